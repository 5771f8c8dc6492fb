//go:build unit || e2e

package builder

import (
	"time"

	domstay "roomstay/internal/domain/stay"
	"roomstay/internal/pkg/caldate"

	"github.com/google/uuid"
)

type StayBuilder struct {
	ID                uuid.UUID
	RoomID            uuid.UUID
	ActiveFrom        caldate.Date
	ActiveTo          caldate.Date
	BookingWindowFrom *caldate.Date
	BookingWindowTo   *caldate.Date
	MinLeadDays       *int
	MaxLeadDays       *int
	ArrivalWeekdays   []time.Weekday
	DepartureWeekdays []time.Weekday
	MinNights         int
	MaxNights         int
}

func NewStayBuilder() *StayBuilder {
	return &StayBuilder{
		ID:         uuid.New(),
		RoomID:     uuid.New(),
		ActiveFrom: caldate.New(2024, time.August, 1),
		ActiveTo:   caldate.New(2024, time.October, 31),
		MinNights:  1,
		MaxNights:  14,
	}
}

func (b *StayBuilder) With(mutate func(*StayBuilder)) *StayBuilder {
	mutate(b)
	return b
}

func (b *StayBuilder) WithRoom(roomID uuid.UUID) *StayBuilder {
	b.RoomID = roomID
	return b
}

func (b *StayBuilder) WithActive(from, to string) *StayBuilder {
	b.ActiveFrom = MustDate(from)
	b.ActiveTo = MustDate(to)
	return b
}

func (b *StayBuilder) WithBookingWindow(from, to string) *StayBuilder {
	if from != "" {
		d := MustDate(from)
		b.BookingWindowFrom = &d
	}
	if to != "" {
		d := MustDate(to)
		b.BookingWindowTo = &d
	}
	return b
}

func (b *StayBuilder) WithLeadDays(minDays, maxDays int) *StayBuilder {
	b.MinLeadDays = &minDays
	b.MaxLeadDays = &maxDays
	return b
}

func (b *StayBuilder) WithArrivalWeekdays(days ...time.Weekday) *StayBuilder {
	b.ArrivalWeekdays = days
	return b
}

func (b *StayBuilder) WithDepartureWeekdays(days ...time.Weekday) *StayBuilder {
	b.DepartureWeekdays = days
	return b
}

func (b *StayBuilder) WithNights(minNights, maxNights int) *StayBuilder {
	b.MinNights = minNights
	b.MaxNights = maxNights
	return b
}

func (b *StayBuilder) BuildDomain() (*domstay.Stay, error) {
	return domstay.NewStay(domstay.NewStayParams{
		ID:                b.ID,
		RoomID:            b.RoomID,
		ActiveFrom:        b.ActiveFrom,
		ActiveTo:          b.ActiveTo,
		BookingWindowFrom: b.BookingWindowFrom,
		BookingWindowTo:   b.BookingWindowTo,
		MinLeadDays:       b.MinLeadDays,
		MaxLeadDays:       b.MaxLeadDays,
		ArrivalWeekdays:   domstay.NewWeekdaySet(b.ArrivalWeekdays...),
		DepartureWeekdays: domstay.NewWeekdaySet(b.DepartureWeekdays...),
		MinNights:         b.MinNights,
		MaxNights:         b.MaxNights,
	})
}

// MustDate parses an ISO date and panics on failure; for fixtures only.
func MustDate(s string) caldate.Date {
	d, err := caldate.Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}
