package commands

import (
	"context"

	"github.com/google/uuid"

	"roomstay/internal/domain/user"
	"roomstay/internal/pkg/errs"
	"roomstay/internal/pkg/jwt"
	"roomstay/internal/pkg/password"
	"roomstay/internal/usecase/queries"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID uuid.UUID
	Token  string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	if _, err := user.NewEmail(email); err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	if _, err := user.NewPassword(plainPassword); err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, hashedPassword, err := a.readStore.FindByEmail(ctx, email)
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID: view.ID,
		Token:  token,
	}, nil
}
