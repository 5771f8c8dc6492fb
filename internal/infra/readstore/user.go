package readstore

import (
	"context"

	"roomstay/internal/infra"
	"roomstay/internal/infra/db"
	"roomstay/internal/pkg/pgconv"
	"roomstay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findUserByIDSQL = `
SELECT id, email, role, is_active, last_login
FROM users
WHERE id = $1
`

const findUserByEmailSQL = `
SELECT id, email, password_hash, role, is_active, last_login
FROM users
WHERE email = $1
`

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var (
		userID    uuid.UUID
		email     string
		role      string
		isActive  bool
		lastLogin pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, findUserByIDSQL, id).Scan(&userID, &email, &role, &isActive, &lastLogin)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.AuthorizedUserView{
		ID:        userID,
		Email:     email,
		Role:      role,
		IsActive:  isActive,
		LastLogin: pgconv.TimePtrFromPgtype(lastLogin),
	}, nil
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		userID       uuid.UUID
		storedEmail  string
		passwordHash string
		role         string
		isActive     bool
		lastLogin    pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, findUserByEmailSQL, email).
		Scan(&userID, &storedEmail, &passwordHash, &role, &isActive, &lastLogin)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	view := &queries.AuthorizedUserView{
		ID:        userID,
		Email:     storedEmail,
		Role:      role,
		IsActive:  isActive,
		LastLogin: pgconv.TimePtrFromPgtype(lastLogin),
	}
	return view, passwordHash, nil
}
