//go:build unit

package schedule_test

import (
	"sort"
	"testing"
	"time"

	"roomstay/internal/domain/reservation"
	"roomstay/internal/domain/room"
	"roomstay/internal/domain/schedule"
	"roomstay/internal/domain/stay"
	"roomstay/internal/pkg/caldate"
	"roomstay/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSnapshot(t *testing.T, rooms []*room.Room, stays []*stay.Stay, rs []*reservation.Reservation) *schedule.Snapshot {
	t.Helper()
	return schedule.NewSnapshot(rooms, schedule.NewPolicyCatalog(stays, nil), rs)
}

func TestBuildDepartureIndex(t *testing.T) {
	today := builder.MustDate("2024-07-01")

	t.Run("single policy entries", func(t *testing.T) {
		r := builder.NewRoomBuilder().MustBuildDomain()
		s := mustStay(t, builder.NewStayBuilder().
			WithRoom(r.ID()).
			WithActive("2024-08-01", "2024-08-31").
			WithArrivalWeekdays(time.Friday).
			WithDepartureWeekdays(time.Sunday).
			WithNights(2, 2))

		snapshot := buildSnapshot(t, []*room.Room{r}, []*stay.Stay{s}, nil)
		idx := schedule.BuildDepartureIndex(snapshot, today)

		entries := idx.Lookup(builder.MustDate("2024-08-04"), r.ID())
		require.Len(t, entries, 1)
		assert.Equal(t, s, entries[0].Stay)
		assert.Equal(t, builder.MustDate("2024-08-02"), entries[0].Arrival)

		// 5 Fridays in August; the last one's Sunday departure falls
		// outside the active window
		assert.Equal(t, 4, idx.Len())
	})

	t.Run("room satisfying one departure from two policies", func(t *testing.T) {
		r := builder.NewRoomBuilder().MustBuildDomain()
		twoNights := mustStay(t, builder.NewStayBuilder().
			WithRoom(r.ID()).
			WithActive("2024-08-01", "2024-08-31").
			WithArrivalWeekdays(time.Friday).
			WithDepartureWeekdays(time.Sunday).
			WithNights(2, 2))
		nineNights := mustStay(t, builder.NewStayBuilder().
			WithRoom(r.ID()).
			WithActive("2024-08-01", "2024-08-31").
			WithArrivalWeekdays(time.Friday).
			WithDepartureWeekdays(time.Sunday).
			WithNights(9, 9))

		snapshot := buildSnapshot(t, []*room.Room{r}, []*stay.Stay{twoNights, nineNights}, nil)
		idx := schedule.BuildDepartureIndex(snapshot, today)

		// 08-11 is reached from 08-09 (+2 nights) and from 08-02 (+9 nights)
		entries := idx.Lookup(builder.MustDate("2024-08-11"), r.ID())
		require.Len(t, entries, 2)

		arrivals := []caldate.Date{entries[0].Arrival, entries[1].Arrival}
		assert.Contains(t, arrivals, builder.MustDate("2024-08-09"))
		assert.Contains(t, arrivals, builder.MustDate("2024-08-02"))
	})

	t.Run("reservations filter indexed departures", func(t *testing.T) {
		r := builder.NewRoomBuilder().MustBuildDomain()
		s := mustStay(t, builder.NewStayBuilder().
			WithRoom(r.ID()).
			WithActive("2024-08-01", "2024-08-10").
			WithNights(1, 3))
		existing := builder.NewReservationBuilder().
			WithRoom(r.ID()).
			WithDates("2024-08-04", "2024-08-06").
			MustBuildDomain()

		snapshot := buildSnapshot(t, []*room.Room{r}, []*stay.Stay{s}, []*reservation.Reservation{existing})
		idx := schedule.BuildDepartureIndex(snapshot, today)

		// 08-05 sits strictly inside the reserved span; no anchor may land
		// a departure there
		assert.Empty(t, idx.Lookup(builder.MustDate("2024-08-05"), r.ID()))

		// 08-04 is reachable as same-day turnover
		assert.NotEmpty(t, idx.Lookup(builder.MustDate("2024-08-04"), r.ID()))
	})

	t.Run("build is idempotent and order-independent", func(t *testing.T) {
		roomA := builder.NewRoomBuilder().MustBuildDomain()
		roomB := builder.NewRoomBuilder().MustBuildDomain()
		stayA := mustStay(t, builder.NewStayBuilder().
			WithRoom(roomA.ID()).
			WithActive("2024-08-01", "2024-08-14").
			WithNights(1, 2))
		stayB := mustStay(t, builder.NewStayBuilder().
			WithRoom(roomB.ID()).
			WithActive("2024-08-01", "2024-08-14").
			WithArrivalWeekdays(time.Friday).
			WithNights(2, 4))
		resA := builder.NewReservationBuilder().
			WithRoom(roomA.ID()).
			WithDates("2024-08-05", "2024-08-07").
			MustBuildDomain()

		forward := buildSnapshot(t,
			[]*room.Room{roomA, roomB},
			[]*stay.Stay{stayA, stayB},
			[]*reservation.Reservation{resA})
		reversed := buildSnapshot(t,
			[]*room.Room{roomB, roomA},
			[]*stay.Stay{stayB, stayA},
			[]*reservation.Reservation{resA})

		first := schedule.BuildDepartureIndex(forward, today)
		second := schedule.BuildDepartureIndex(forward, today)
		third := schedule.BuildDepartureIndex(reversed, today)

		assert.True(t, indexEqual(first, second, roomA, roomB))
		assert.True(t, indexEqual(first, third, roomA, roomB))
	})
}

// indexEqual compares index contents as sets per (departure, room) key.
func indexEqual(a, b *schedule.DepartureIndex, rooms ...*room.Room) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, d := range a.Dates() {
		for _, r := range rooms {
			if !cmp.Equal(entryKeys(a.Lookup(d, r.ID())), entryKeys(b.Lookup(d, r.ID()))) {
				return false
			}
		}
	}
	return true
}

func entryKeys(entries []schedule.IndexEntry) []string {
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Stay.ID().String()+"/"+e.Arrival.String())
	}
	sort.Strings(keys)
	return keys
}
