package reservation

import (
	"strings"
	"time"

	"roomstay/internal/pkg/caldate"
	"roomstay/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateRange = errs.New("arrival date must precede departure date")
	ErrInvalidStatus    = errs.New("invalid reservation status")
	ErrMissingRoom      = errs.New("reservation must reference a room")
	ErrEmptyGuestName   = errs.New("guest name cannot be empty")
)

type Reservation struct {
	id         uuid.UUID
	roomID     uuid.UUID
	arrival    caldate.Date
	departure  caldate.Date
	status     Status
	guestName  string
	guestEmail string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReservation(roomID uuid.UUID, arrival, departure caldate.Date, guestName, guestEmail string, now time.Time) (*Reservation, error) {
	if roomID == uuid.Nil {
		return nil, ErrMissingRoom
	}
	if !arrival.Before(departure) {
		return nil, ErrInvalidDateRange
	}
	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return nil, ErrEmptyGuestName
	}

	return &Reservation{
		id:         uuid.New(),
		roomID:     roomID,
		arrival:    arrival,
		departure:  departure,
		status:     StatusConfirmed,
		guestName:  guestName,
		guestEmail: strings.TrimSpace(guestEmail),
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructReservation(
	id, roomID uuid.UUID,
	arrival, departure caldate.Date,
	status Status,
	guestName, guestEmail string,
	createdAt, updatedAt time.Time,
) (*Reservation, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if !arrival.Before(departure) {
		return nil, ErrInvalidDateRange
	}
	return &Reservation{
		id:         id,
		roomID:     roomID,
		arrival:    arrival,
		departure:  departure,
		status:     status,
		guestName:  guestName,
		guestEmail: guestEmail,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

// OccupiedSpan is the instant interval this reservation holds the room for.
func (r *Reservation) OccupiedSpan() Span {
	return NewSpan(r.arrival, r.departure)
}

func (r *Reservation) Nights() int {
	return r.arrival.DaysUntil(r.departure)
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) RoomID() uuid.UUID       { return r.roomID }
func (r *Reservation) Arrival() caldate.Date   { return r.arrival }
func (r *Reservation) Departure() caldate.Date { return r.departure }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) GuestName() string       { return r.guestName }
func (r *Reservation) GuestEmail() string      { return r.guestEmail }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time    { return r.updatedAt }
