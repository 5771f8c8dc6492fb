// Package clock injects "now" into every computation so availability can be
// tested against fixed dates instead of the wall clock.
package clock

import (
	"time"

	"roomstay/internal/pkg/caldate"
)

type Clock interface {
	Now() time.Time
	Today() caldate.Date
}

type RealClock struct {
	loc *time.Location
}

func NewRealClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return &RealClock{loc: loc}
}

func (c *RealClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *RealClock) Today() caldate.Date {
	return caldate.FromTime(c.Now())
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

// NewMockClockAt pins the clock to noon on the given calendar day.
func NewMockClockAt(d caldate.Date) *MockClock {
	return &MockClock{currentTime: d.At(12, 0, time.UTC)}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Today() caldate.Date {
	return caldate.FromTime(c.currentTime)
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
