package stay

import (
	"strings"
	"time"

	"roomstay/internal/pkg/caldate"
)

// ActiveWindow is the closed calendar-date range during which a policy
// applies. Both arrival and departure must fall inside it.
type ActiveWindow struct {
	from caldate.Date
	to   caldate.Date
}

func NewActiveWindow(from, to caldate.Date) (ActiveWindow, error) {
	if from.IsZero() || to.IsZero() {
		return ActiveWindow{}, ErrInvalidActiveWindow
	}
	if from.After(to) {
		return ActiveWindow{}, ErrInvalidActiveWindow
	}
	return ActiveWindow{from: from, to: to}, nil
}

func (w ActiveWindow) From() caldate.Date { return w.from }
func (w ActiveWindow) To() caldate.Date   { return w.to }

func (w ActiveWindow) Contains(d caldate.Date) bool {
	return !d.Before(w.from) && !d.After(w.to)
}

// BookingWindow bounds when a reservation may be made, as absolute dates.
// A nil bound means "unbounded" on that side.
type BookingWindow struct {
	from *caldate.Date
	to   *caldate.Date
}

func NewBookingWindow(from, to *caldate.Date) (BookingWindow, error) {
	if from != nil && to != nil && from.After(*to) {
		return BookingWindow{}, ErrInvalidBookingWindow
	}
	return BookingWindow{from: from, to: to}, nil
}

func (w BookingWindow) From() *caldate.Date { return w.from }
func (w BookingWindow) To() *caldate.Date   { return w.to }

// LeadDays bounds when a reservation may be made, as offsets from today.
// It intersects with the absolute BookingWindow.
type LeadDays struct {
	min *int
	max *int
}

func NewLeadDays(minDays, maxDays *int) (LeadDays, error) {
	if minDays != nil && *minDays < 0 {
		return LeadDays{}, ErrInvalidLeadDays
	}
	if maxDays != nil && *maxDays < 0 {
		return LeadDays{}, ErrInvalidLeadDays
	}
	if minDays != nil && maxDays != nil && *minDays > *maxDays {
		return LeadDays{}, ErrInvalidLeadDays
	}
	return LeadDays{min: minDays, max: maxDays}, nil
}

func (l LeadDays) Min() *int { return l.min }
func (l LeadDays) Max() *int { return l.max }

// NightRange is the inclusive bound on the stay length in nights.
type NightRange struct {
	min int
	max int
}

func NewNightRange(minNights, maxNights int) (NightRange, error) {
	if minNights < 0 || minNights > maxNights {
		return NightRange{}, ErrInvalidNightRange
	}
	return NightRange{min: minNights, max: maxNights}, nil
}

func (n NightRange) Min() int { return n.min }
func (n NightRange) Max() int { return n.max }

func (n NightRange) Contains(nights int) bool {
	return nights >= n.min && nights <= n.max
}

// WeekdaySet is a set of weekdays stored as a bitmask. The empty set is
// normalized to "all seven days" at construction: an absent restriction
// means the policy is fully open, not fully closed.
type WeekdaySet struct {
	mask uint8
}

const allWeekdaysMask = 0x7F

func AllWeekdays() WeekdaySet {
	return WeekdaySet{mask: allWeekdaysMask}
}

func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var mask uint8
	for _, d := range days {
		mask |= 1 << uint(d)
	}
	if mask == 0 {
		mask = allWeekdaysMask
	}
	return WeekdaySet{mask: mask}
}

// ParseWeekdaySet builds a set from three-letter codes ("MON", "FRI").
// An empty list yields the fully open set.
func ParseWeekdaySet(codes []string) (WeekdaySet, error) {
	days := make([]time.Weekday, 0, len(codes))
	for _, code := range codes {
		if strings.TrimSpace(code) == "" {
			continue
		}
		wd, err := caldate.ParseWeekday(code)
		if err != nil {
			return WeekdaySet{}, err
		}
		days = append(days, wd)
	}
	return NewWeekdaySet(days...), nil
}

func (s WeekdaySet) Contains(d time.Weekday) bool {
	return s.mask&(1<<uint(d)) != 0
}

func (s WeekdaySet) IsOpen() bool {
	return s.mask == allWeekdaysMask
}

func (s WeekdaySet) Codes() []string {
	codes := make([]string, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Contains(d) {
			codes = append(codes, caldate.WeekdayCode(d))
		}
	}
	return codes
}
