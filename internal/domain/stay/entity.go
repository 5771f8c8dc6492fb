package stay

import (
	"roomstay/internal/pkg/caldate"
	"roomstay/internal/pkg/errs"

	"github.com/google/uuid"
)

// Policy-data errors. A record failing these is excluded from the catalog
// with a warning rather than failing the whole load.
var (
	ErrInvalidActiveWindow  = errs.New("stay active window is invalid")
	ErrInvalidBookingWindow = errs.New("stay booking window is invalid")
	ErrInvalidLeadDays      = errs.New("stay lead-day bounds are invalid")
	ErrInvalidNightRange    = errs.New("stay night range is invalid")
	ErrMissingRoom          = errs.New("stay must reference a room")
)

// Stay is a reusable rule set governing which arrival/departure
// combinations are offerable for a room over a date range.
type Stay struct {
	id                uuid.UUID
	roomID            uuid.UUID
	active            ActiveWindow
	bookingWindow     BookingWindow
	leadDays          LeadDays
	arrivalWeekdays   WeekdaySet
	departureWeekdays WeekdaySet
	nights            NightRange
}

type NewStayParams struct {
	ID                uuid.UUID
	RoomID            uuid.UUID
	ActiveFrom        caldate.Date
	ActiveTo          caldate.Date
	BookingWindowFrom *caldate.Date
	BookingWindowTo   *caldate.Date
	MinLeadDays       *int
	MaxLeadDays       *int
	ArrivalWeekdays   WeekdaySet
	DepartureWeekdays WeekdaySet
	MinNights         int
	MaxNights         int
}

func NewStay(p NewStayParams) (*Stay, error) {
	if p.RoomID == uuid.Nil {
		return nil, ErrMissingRoom
	}

	active, err := NewActiveWindow(p.ActiveFrom, p.ActiveTo)
	if err != nil {
		return nil, err
	}

	bookingWindow, err := NewBookingWindow(p.BookingWindowFrom, p.BookingWindowTo)
	if err != nil {
		return nil, err
	}

	leadDays, err := NewLeadDays(p.MinLeadDays, p.MaxLeadDays)
	if err != nil {
		return nil, err
	}

	nights, err := NewNightRange(p.MinNights, p.MaxNights)
	if err != nil {
		return nil, err
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	arrival := p.ArrivalWeekdays
	if arrival == (WeekdaySet{}) {
		arrival = AllWeekdays()
	}
	departure := p.DepartureWeekdays
	if departure == (WeekdaySet{}) {
		departure = AllWeekdays()
	}

	return &Stay{
		id:                id,
		roomID:            p.RoomID,
		active:            active,
		bookingWindow:     bookingWindow,
		leadDays:          leadDays,
		arrivalWeekdays:   arrival,
		departureWeekdays: departure,
		nights:            nights,
	}, nil
}

func (s *Stay) ID() uuid.UUID                 { return s.id }
func (s *Stay) RoomID() uuid.UUID             { return s.roomID }
func (s *Stay) Active() ActiveWindow          { return s.active }
func (s *Stay) BookingWindow() BookingWindow  { return s.bookingWindow }
func (s *Stay) LeadDays() LeadDays            { return s.leadDays }
func (s *Stay) ArrivalWeekdays() WeekdaySet   { return s.arrivalWeekdays }
func (s *Stay) DepartureWeekdays() WeekdaySet { return s.departureWeekdays }
func (s *Stay) Nights() NightRange            { return s.nights }

// AllowsArrival reports whether the date can start a stay under this
// policy: inside the active window with an allowed arrival weekday.
// Booking-window and lead-day limits are checked separately because they
// depend on "today", not on the arrival date alone.
func (s *Stay) AllowsArrival(d caldate.Date) bool {
	return s.active.Contains(d) && s.arrivalWeekdays.Contains(d.Weekday())
}

// AllowsDeparture reports whether the date can end a stay under this
// policy: inside the active window with an allowed departure weekday.
func (s *Stay) AllowsDeparture(d caldate.Date) bool {
	return s.active.Contains(d) && s.departureWeekdays.Contains(d.Weekday())
}

// BookableArrivalBounds intersects the active window, the absolute booking
// window and the lead-day offsets from today into the effective closed
// range of offerable arrival dates. ok is false when the intersection is
// empty, which is a normal outcome rather than an error.
func (s *Stay) BookableArrivalBounds(today caldate.Date) (lower, upper caldate.Date, ok bool) {
	lower = s.active.From()
	upper = s.active.To()

	if from := s.bookingWindow.From(); from != nil {
		lower = caldate.Max(lower, *from)
	}
	if to := s.bookingWindow.To(); to != nil {
		upper = caldate.Min(upper, *to)
	}
	if minLead := s.leadDays.Min(); minLead != nil {
		lower = caldate.Max(lower, today.AddDays(*minLead))
	}
	if maxLead := s.leadDays.Max(); maxLead != nil {
		upper = caldate.Min(upper, today.AddDays(*maxLead))
	}

	if lower.After(upper) {
		return caldate.Date{}, caldate.Date{}, false
	}
	return lower, upper, true
}
