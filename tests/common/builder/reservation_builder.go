//go:build unit || e2e

package builder

import (
	"time"

	domreservation "roomstay/internal/domain/reservation"
	"roomstay/internal/pkg/caldate"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	RoomID     uuid.UUID
	Arrival    caldate.Date
	Departure  caldate.Date
	Status     domreservation.Status
	GuestName  string
	GuestEmail string
	CreatedAt  time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		RoomID:     uuid.New(),
		Arrival:    caldate.New(2024, time.August, 4),
		Departure:  caldate.New(2024, time.August, 6),
		Status:     domreservation.StatusConfirmed,
		GuestName:  "Aki Tanaka",
		GuestEmail: "guest@example.com",
		CreatedAt:  time.Now(),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithRoom(roomID uuid.UUID) *ReservationBuilder {
	b.RoomID = roomID
	return b
}

func (b *ReservationBuilder) WithDates(arrival, departure string) *ReservationBuilder {
	b.Arrival = MustDate(arrival)
	b.Departure = MustDate(departure)
	return b
}

func (b *ReservationBuilder) WithStatus(status domreservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	return domreservation.ReconstructReservation(
		uuid.New(),
		b.RoomID,
		b.Arrival,
		b.Departure,
		b.Status,
		b.GuestName,
		b.GuestEmail,
		b.CreatedAt,
		b.CreatedAt,
	)
}

// MustBuildDomain is for fixtures whose inputs are known valid.
func (b *ReservationBuilder) MustBuildDomain() *domreservation.Reservation {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}
