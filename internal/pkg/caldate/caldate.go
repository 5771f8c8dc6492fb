// Package caldate provides a calendar-date value type for the booking
// engine. All scheduling rules operate on whole local days; sub-day
// precision only appears when a date is anchored to one of the fixed
// check-in/check-out instants.
package caldate

import (
	"fmt"
	"sort"
	"time"

	"roomstay/internal/pkg/errs"
)

const Layout = "2006-01-02"

var ErrInvalidDate = errs.New("invalid calendar date")

// Date is an immutable local calendar day. The zero value is invalid and
// reports IsZero() == true.
type Date struct {
	year  int
	month time.Month
	day   int
}

func New(year int, month time.Month, day int) Date {
	// Normalize through time.Time so "2024-02-30" becomes a real date
	// instead of a silently broken value.
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

// Parse accepts RFC 3339 full-date strings ("2024-08-02").
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, errs.Mark(errs.Wrap(err, "parse calendar date"), ErrInvalidDate)
	}
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}, nil
}

func FromTime(t time.Time) Date {
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }

func (d Date) Weekday() time.Weekday {
	return d.midnight().Weekday()
}

func (d Date) AddDays(n int) Date {
	return FromTime(d.midnight().AddDate(0, 0, n))
}

// DaysUntil returns the signed number of days from d to other.
func (d Date) DaysUntil(other Date) int {
	return int(other.midnight().Sub(d.midnight()) / (24 * time.Hour))
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }

func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return cmpInt(d.year, other.year)
	case d.month != other.month:
		return cmpInt(int(d.month), int(other.month))
	default:
		return cmpInt(d.day, other.day)
	}
}

// At anchors the date to a time of day in the given location.
func (d Date) At(hour, minute int, loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, hour, minute, 0, 0, loc)
}

func (d Date) midnight() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return ErrInvalidDate
	}
	parsed, err := Parse(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func Max(a, b Date) Date {
	if a.After(b) {
		return a
	}
	return b
}

func Min(a, b Date) Date {
	if a.Before(b) {
		return a
	}
	return b
}

// Sort orders dates ascending in place.
func Sort(dates []Date) {
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
