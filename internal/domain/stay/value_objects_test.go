//go:build unit

package stay_test

import (
	"testing"
	"time"

	"roomstay/internal/domain/stay"
	"roomstay/internal/pkg/caldate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdaySet(t *testing.T) {
	t.Run("empty set defaults to all days", func(t *testing.T) {
		s := stay.NewWeekdaySet()
		assert.True(t, s.IsOpen())
		for d := time.Sunday; d <= time.Saturday; d++ {
			assert.True(t, s.Contains(d))
		}
	})

	t.Run("restricted set", func(t *testing.T) {
		s := stay.NewWeekdaySet(time.Friday, time.Saturday)
		assert.False(t, s.IsOpen())
		assert.True(t, s.Contains(time.Friday))
		assert.True(t, s.Contains(time.Saturday))
		assert.False(t, s.Contains(time.Monday))
		assert.Equal(t, []string{"FRI", "SAT"}, s.Codes())
	})

	t.Run("parse codes", func(t *testing.T) {
		s, err := stay.ParseWeekdaySet([]string{"MON", "fri"})
		require.NoError(t, err)
		assert.True(t, s.Contains(time.Monday))
		assert.True(t, s.Contains(time.Friday))
		assert.False(t, s.Contains(time.Sunday))
	})

	t.Run("parse empty list yields open set", func(t *testing.T) {
		s, err := stay.ParseWeekdaySet(nil)
		require.NoError(t, err)
		assert.True(t, s.IsOpen())
	})

	t.Run("parse rejects unknown code", func(t *testing.T) {
		_, err := stay.ParseWeekdaySet([]string{"MON", "XYZ"})
		require.ErrorIs(t, err, caldate.ErrInvalidWeekdayCode)
	})
}

func TestNightRange(t *testing.T) {
	n, err := stay.NewNightRange(2, 5)
	require.NoError(t, err)

	assert.False(t, n.Contains(1))
	assert.True(t, n.Contains(2))
	assert.True(t, n.Contains(5))
	assert.False(t, n.Contains(6))
}

func TestActiveWindowContains(t *testing.T) {
	from := caldate.New(2024, time.August, 1)
	to := caldate.New(2024, time.October, 31)

	w, err := stay.NewActiveWindow(from, to)
	require.NoError(t, err)

	assert.True(t, w.Contains(from))
	assert.True(t, w.Contains(to))
	assert.True(t, w.Contains(caldate.New(2024, time.September, 15)))
	assert.False(t, w.Contains(from.AddDays(-1)))
	assert.False(t, w.Contains(to.AddDays(1)))

	_, err = stay.NewActiveWindow(caldate.Date{}, to)
	require.ErrorIs(t, err, stay.ErrInvalidActiveWindow)
}
