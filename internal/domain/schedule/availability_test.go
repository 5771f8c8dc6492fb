//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"roomstay/internal/domain/reservation"
	"roomstay/internal/domain/schedule"
	"roomstay/internal/domain/stay"
	"roomstay/internal/pkg/caldate"
	"roomstay/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStay(t *testing.T, b *builder.StayBuilder) *stay.Stay {
	t.Helper()
	s, err := b.BuildDomain()
	require.NoError(t, err)
	return s
}

func TestArrivalDates(t *testing.T) {
	today := builder.MustDate("2024-07-01")

	t.Run("weekday-restricted policy", func(t *testing.T) {
		s := mustStay(t, builder.NewStayBuilder().
			WithActive("2024-08-01", "2024-10-31").
			WithArrivalWeekdays(time.Friday).
			WithDepartureWeekdays(time.Sunday).
			WithNights(2, 2))

		dates := schedule.ArrivalDates(s, today)
		require.NotEmpty(t, dates)

		assert.Contains(t, dates, builder.MustDate("2024-08-02"))

		// every generated date satisfies the policy's own constraints
		for _, d := range dates {
			assert.Equal(t, time.Friday, d.Weekday(), "date %s", d)
			assert.True(t, s.Active().Contains(d), "date %s", d)
		}

		// 13 Fridays in Aug-Oct 2024
		assert.Len(t, dates, 13)
	})

	t.Run("open policy enumerates every day", func(t *testing.T) {
		s := mustStay(t, builder.NewStayBuilder().WithActive("2024-08-01", "2024-08-07"))

		dates := schedule.ArrivalDates(s, today)
		assert.Len(t, dates, 7)
	})

	t.Run("empty effective window yields empty set", func(t *testing.T) {
		s := mustStay(t, builder.NewStayBuilder().
			WithActive("2024-08-01", "2024-08-31").
			WithLeadDays(90, 120))

		assert.Empty(t, schedule.ArrivalDates(s, today))
	})

	t.Run("lead days shift the lower bound", func(t *testing.T) {
		s := mustStay(t, builder.NewStayBuilder().
			WithActive("2024-06-01", "2024-10-31").
			WithLeadDays(10, 20))

		dates := schedule.ArrivalDates(s, today)
		require.NotEmpty(t, dates)
		assert.Equal(t, "2024-07-11", dates[0].String())
		assert.Equal(t, "2024-07-21", dates[len(dates)-1].String())
	})
}

func TestDepartureDates(t *testing.T) {
	t.Run("scenario: two-night friday-to-sunday stay", func(t *testing.T) {
		s := mustStay(t, builder.NewStayBuilder().
			WithActive("2024-08-01", "2024-10-31").
			WithArrivalWeekdays(time.Friday).
			WithDepartureWeekdays(time.Sunday).
			WithNights(2, 2))

		dates := schedule.DepartureDates(builder.MustDate("2024-08-02"), s, nil)
		require.Len(t, dates, 1)
		assert.Equal(t, "2024-08-04", dates[0].String())
	})

	t.Run("night bounds honored", func(t *testing.T) {
		s := mustStay(t, builder.NewStayBuilder().
			WithActive("2024-08-01", "2024-10-31").
			WithNights(2, 5))

		arrival := builder.MustDate("2024-08-02")
		dates := schedule.DepartureDates(arrival, s, nil)
		require.Len(t, dates, 4)
		for _, d := range dates {
			nights := arrival.DaysUntil(d)
			assert.GreaterOrEqual(t, nights, 2)
			assert.LessOrEqual(t, nights, 5)
		}
	})

	t.Run("departure weekday filter", func(t *testing.T) {
		s := mustStay(t, builder.NewStayBuilder().
			WithActive("2024-08-01", "2024-10-31").
			WithDepartureWeekdays(time.Sunday).
			WithNights(1, 7))

		dates := schedule.DepartureDates(builder.MustDate("2024-08-02"), s, nil)
		require.Len(t, dates, 1)
		assert.Equal(t, "2024-08-04", dates[0].String())
	})

	t.Run("departures truncated at active window end", func(t *testing.T) {
		s := mustStay(t, builder.NewStayBuilder().
			WithActive("2024-08-01", "2024-08-05").
			WithNights(1, 10))

		dates := schedule.DepartureDates(builder.MustDate("2024-08-03"), s, nil)
		require.Len(t, dates, 2) // 08-04 and 08-05 only
		assert.Equal(t, "2024-08-05", dates[len(dates)-1].String())
	})

	t.Run("conflicting departures never returned", func(t *testing.T) {
		roomID := builder.NewRoomBuilder().MustBuildDomain().ID()
		existing := builder.NewReservationBuilder().
			WithRoom(roomID).
			WithDates("2024-08-04", "2024-08-06").
			MustBuildDomain()

		s := mustStay(t, builder.NewStayBuilder().
			WithRoom(roomID).
			WithActive("2024-08-01", "2024-10-31").
			WithNights(1, 7))

		arrival := builder.MustDate("2024-08-02")
		dates := schedule.DepartureDates(arrival, s, []*reservation.Reservation{existing})

		for _, d := range dates {
			sameDayTurnover := d == existing.Arrival()
			overlaps := d.After(existing.Arrival()) && !d.After(existing.Departure())
			engulfs := arrival.Before(existing.Arrival()) && d.After(existing.Departure())
			assert.True(t, sameDayTurnover || (!overlaps && !engulfs), "date %s", d)
		}

		// 08-03 (before) and 08-04 (turnover) survive; 08-05, 08-06 overlap,
		// 08-07 onward engulf the existing reservation.
		assert.Equal(t, []caldate.Date{
			builder.MustDate("2024-08-03"),
			builder.MustDate("2024-08-04"),
		}, dates)
	})
}

func TestIsValidArrival(t *testing.T) {
	s := mustStay(t, builder.NewStayBuilder().
		WithActive("2024-08-01", "2024-10-31").
		WithArrivalWeekdays(time.Friday))

	assert.True(t, schedule.IsValidArrival(builder.MustDate("2024-08-02"), s))
	assert.False(t, schedule.IsValidArrival(builder.MustDate("2024-08-01"), s)) // Thursday
	assert.False(t, schedule.IsValidArrival(builder.MustDate("2024-11-01"), s)) // outside window
}

func TestRoomArrivalDates(t *testing.T) {
	roomID := builder.NewRoomBuilder().MustBuildDomain().ID()
	today := builder.MustDate("2024-07-01")

	fri := mustStay(t, builder.NewStayBuilder().
		WithRoom(roomID).
		WithActive("2024-08-01", "2024-08-31").
		WithArrivalWeekdays(time.Friday))
	weekend := mustStay(t, builder.NewStayBuilder().
		WithRoom(roomID).
		WithActive("2024-08-01", "2024-08-31").
		WithArrivalWeekdays(time.Friday, time.Saturday))

	merged := schedule.RoomArrivalDates([]*stay.Stay{fri, weekend}, today)

	// 5 Fridays + 5 Saturdays in August 2024, deduplicated and sorted
	require.Len(t, merged, 10)
	for i := 1; i < len(merged); i++ {
		assert.True(t, merged[i-1].Before(merged[i]))
	}
}
