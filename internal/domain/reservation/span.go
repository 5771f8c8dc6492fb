package reservation

import (
	"time"

	"roomstay/internal/pkg/caldate"
)

// Fixed daily cutover instants. A reservation occupies the room from the
// check-in instant on its arrival date to the check-out instant on its
// departure date; because check-out precedes check-in, a departure and a
// new arrival on the same calendar day never overlap.
const (
	CheckInHour  = 15
	CheckOutHour = 11
)

// ArrivalInstant is the moment a stay beginning on d takes the room.
func ArrivalInstant(d caldate.Date) time.Time {
	return d.At(CheckInHour, 0, time.UTC)
}

// DepartureInstant is the moment a stay ending on d releases the room.
func DepartureInstant(d caldate.Date) time.Time {
	return d.At(CheckOutHour, 0, time.UTC)
}

// Span is the occupied instant interval of a date range.
type Span struct {
	start time.Time // arrival instant
	end   time.Time // departure instant
}

func NewSpan(arrival, departure caldate.Date) Span {
	return Span{start: ArrivalInstant(arrival), end: DepartureInstant(departure)}
}

func (s Span) Start() time.Time { return s.start }
func (s Span) End() time.Time   { return s.end }

// ContainsInstant reports whether t falls inside the span, boundaries
// included.
func (s Span) ContainsInstant(t time.Time) bool {
	return !t.Before(s.start) && !t.After(s.end)
}
