package writerepo

import (
	"context"
	"errors"

	"roomstay/internal/domain/reservation"
	"roomstay/internal/infra"
	"roomstay/internal/infra/db"
	"roomstay/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeExclusionViolation  = "23P01"
)

const createReservationSQL = `
INSERT INTO reservations (
	id, room_id, arrival_date, departure_date, status,
	guest_name, guest_email, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

// Create inserts the reservation. The reservations table carries a gist
// exclusion constraint over (room_id, occupied date range), so a race
// between two bookings surfaces as KindConflict no matter which snapshot
// each one validated against.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	_, err := r.db.Exec(ctx, createReservationSQL,
		res.ID(),
		res.RoomID(),
		pgconv.DateToPgtype(res.Arrival()),
		pgconv.DateToPgtype(res.Departure()),
		string(res.Status()),
		res.GuestName(),
		pgconv.TextToPgtype(res.GuestEmail()),
		pgconv.TimeToPgtype(res.CreatedAt()),
		pgconv.TimeToPgtype(res.UpdatedAt()),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrCodeExclusionViolation:
				return infra.WrapRepoErr("reservation dates overlap an existing booking", err, infra.KindConflict)
			case pgErrCodeUniqueViolation:
				return infra.WrapRepoErr("reservation already exists", err, infra.KindDuplicateKey)
			case pgErrCodeForeignKeyViolation:
				return infra.WrapRepoErr("reservation references an unknown room", err, infra.KindForeignKeyViolated)
			}
		}
		return infra.WrapRepoErr("failed to create reservation", err)
	}

	return nil
}
