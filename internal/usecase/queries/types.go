package queries

import (
	"time"

	"roomstay/internal/pkg/caldate"

	"github.com/google/uuid"
)

type AuthorizedUserView struct {
	ID        uuid.UUID
	Email     string
	Role      string
	IsActive  bool
	LastLogin *time.Time
}

type RoomView struct {
	ID                         uuid.UUID
	LocationID                 uuid.UUID
	LocationName               string
	Name                       string
	PricePerNightPerGuestCents int64
	GuestCapacity              int
}

type ReservationView struct {
	ID         uuid.UUID
	RoomID     uuid.UUID
	RoomName   string
	Arrival    caldate.Date
	Departure  caldate.Date
	Nights     int
	Status     string
	GuestName  string
	GuestEmail string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ArrivalDatesView lists the offerable arrival dates of one room as of the
// snapshot's "today".
type ArrivalDatesView struct {
	RoomID uuid.UUID
	Today  caldate.Date
	Dates  []caldate.Date
}

type DepartureDatesView struct {
	RoomID  uuid.UUID
	Arrival caldate.Date
	Dates   []caldate.Date
}

// DepartureIndexView is the flattened read model of the departure index:
// one row per (departure date, room, policy, arrival) combination.
type DepartureIndexView struct {
	Today   caldate.Date
	Entries []DepartureIndexEntry
}

type DepartureIndexEntry struct {
	Departure caldate.Date
	RoomID    uuid.UUID
	StayID    uuid.UUID
	Arrival   caldate.Date
	Nights    int
}
