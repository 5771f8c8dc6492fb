//go:build unit

package caldate_test

import (
	"encoding/json"
	"testing"
	"time"

	"roomstay/internal/pkg/caldate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndString(t *testing.T) {
	d, err := caldate.Parse("2024-08-02")
	require.NoError(t, err)
	assert.Equal(t, "2024-08-02", d.String())
	assert.Equal(t, time.Friday, d.Weekday())

	_, err = caldate.Parse("02/08/2024")
	require.Error(t, err)
	require.ErrorIs(t, err, caldate.ErrInvalidDate)

	_, err = caldate.Parse("")
	require.Error(t, err)
}

// Formatting then parsing yields the identical date for every day in a
// ten-year span, leap days included.
func TestRoundTripTenYears(t *testing.T) {
	d := caldate.New(2020, time.January, 1)
	end := caldate.New(2030, time.January, 1)

	for ; d.Before(end); d = d.AddDays(1) {
		parsed, err := caldate.Parse(d.String())
		require.NoError(t, err, "date %s", d)
		require.Equal(t, d, parsed, "date %s", d)
	}
}

func TestAddDaysAcrossBoundaries(t *testing.T) {
	testCases := []struct {
		name  string
		start string
		days  int
		want  string
	}{
		{name: "within month", start: "2024-08-02", days: 2, want: "2024-08-04"},
		{name: "month boundary", start: "2024-08-30", days: 3, want: "2024-09-02"},
		{name: "year boundary", start: "2024-12-30", days: 3, want: "2025-01-02"},
		{name: "leap day", start: "2024-02-28", days: 1, want: "2024-02-29"},
		{name: "non-leap february", start: "2025-02-28", days: 1, want: "2025-03-01"},
		{name: "negative offset", start: "2024-03-01", days: -1, want: "2024-02-29"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start, err := caldate.Parse(tc.start)
			require.NoError(t, err)
			assert.Equal(t, tc.want, start.AddDays(tc.days).String())
		})
	}
}

func TestDaysUntil(t *testing.T) {
	a, _ := caldate.Parse("2024-08-02")
	b, _ := caldate.Parse("2024-08-04")

	assert.Equal(t, 2, a.DaysUntil(b))
	assert.Equal(t, -2, b.DaysUntil(a))
	assert.Equal(t, 0, a.DaysUntil(a))

	// across a DST-style boundary the day count stays calendar-based
	c, _ := caldate.Parse("2024-03-01")
	d, _ := caldate.Parse("2024-04-01")
	assert.Equal(t, 31, c.DaysUntil(d))
}

func TestCompare(t *testing.T) {
	a, _ := caldate.Parse("2024-08-02")
	b, _ := caldate.Parse("2024-08-04")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.After(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
}

func TestJSONRoundTrip(t *testing.T) {
	d, _ := caldate.Parse("2024-02-29")

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-02-29"`, string(data))

	var decoded caldate.Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, d, decoded)

	require.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &decoded))
	require.Error(t, json.Unmarshal([]byte(`42`), &decoded))
}

func TestParseWeekday(t *testing.T) {
	wd, err := caldate.ParseWeekday("FRI")
	require.NoError(t, err)
	assert.Equal(t, time.Friday, wd)

	wd, err = caldate.ParseWeekday(" mon ")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, wd)

	_, err = caldate.ParseWeekday("FRIDAY")
	require.ErrorIs(t, err, caldate.ErrInvalidWeekdayCode)

	for d := time.Sunday; d <= time.Saturday; d++ {
		code := caldate.WeekdayCode(d)
		parsed, err := caldate.ParseWeekday(code)
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}
}

func TestMinMax(t *testing.T) {
	a, _ := caldate.Parse("2024-08-02")
	b, _ := caldate.Parse("2024-08-04")

	assert.Equal(t, b, caldate.Max(a, b))
	assert.Equal(t, a, caldate.Min(a, b))
	assert.Equal(t, a, caldate.Max(a, a))
}
