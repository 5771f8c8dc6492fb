package readstore

import (
	"context"

	"roomstay/internal/domain/reservation"
	"roomstay/internal/infra"
	"roomstay/internal/infra/db"
	"roomstay/internal/pkg/pgconv"
	"roomstay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findBlockingReservationsSQL = `
SELECT id, room_id, arrival_date, departure_date, status,
       guest_name, COALESCE(guest_email, '') AS guest_email, created_at, updated_at
FROM reservations
WHERE status <> 'checked_out'
ORDER BY room_id, arrival_date
`

const findReservationByIDSQL = `
SELECT res.id, res.room_id, r.name AS room_name,
       res.arrival_date, res.departure_date, res.status,
       res.guest_name, COALESCE(res.guest_email, '') AS guest_email, res.created_at, res.updated_at
FROM reservations res
JOIN rooms r ON r.id = res.room_id
WHERE res.id = $1
`

const findReservationsByRoomSQL = `
SELECT res.id, res.room_id, r.name AS room_name,
       res.arrival_date, res.departure_date, res.status,
       res.guest_name, COALESCE(res.guest_email, '') AS guest_email, res.created_at, res.updated_at
FROM reservations res
JOIN rooms r ON r.id = res.room_id
WHERE res.room_id = $1
ORDER BY res.arrival_date
`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

// FindBlocking returns every reservation still occupying its room.
// Checked-out stays no longer block the calendar.
func (s *ReservationReadStore) FindBlocking(ctx context.Context) ([]*reservation.Reservation, error) {
	rows, err := s.db.Query(ctx, findBlockingReservationsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reservations", err)
	}
	defer rows.Close()

	var result []*reservation.Reservation
	for rows.Next() {
		var (
			id, roomID            uuid.UUID
			arrival, departure    pgtype.Date
			status                string
			guestName, guestEmail string
			createdAt, updatedAt  pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &roomID, &arrival, &departure, &status,
			&guestName, &guestEmail, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}

		res, err := reservation.ReconstructReservation(
			id, roomID,
			pgconv.DateFromPgtype(arrival), pgconv.DateFromPgtype(departure),
			reservation.Status(status),
			guestName, guestEmail,
			pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
		)
		if err != nil {
			return nil, infra.WrapRepoErr("reservation row violates domain invariants", err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}

	return result, nil
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := s.db.QueryRow(ctx, findReservationByIDSQL, id)

	view, err := scanReservationView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return view, nil
}

func (s *ReservationReadStore) FindByRoom(ctx context.Context, roomID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := s.db.Query(ctx, findReservationsByRoomSQL, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reservations by room", err)
	}
	defer rows.Close()

	var result []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation view row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation view rows", err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservationView(row rowScanner) (*queries.ReservationView, error) {
	var (
		id, roomID            uuid.UUID
		roomName              string
		arrival, departure    pgtype.Date
		status                string
		guestName, guestEmail string
		createdAt, updatedAt  pgtype.Timestamptz
	)
	if err := row.Scan(&id, &roomID, &roomName, &arrival, &departure, &status,
		&guestName, &guestEmail, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	arrivalDate := pgconv.DateFromPgtype(arrival)
	departureDate := pgconv.DateFromPgtype(departure)
	return &queries.ReservationView{
		ID:         id,
		RoomID:     roomID,
		RoomName:   roomName,
		Arrival:    arrivalDate,
		Departure:  departureDate,
		Nights:     arrivalDate.DaysUntil(departureDate),
		Status:     status,
		GuestName:  guestName,
		GuestEmail: guestEmail,
		CreatedAt:  pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:  pgconv.TimeFromPgtype(updatedAt),
	}, nil
}
