package schedule

import (
	"sort"

	"roomstay/internal/domain/reservation"
	"roomstay/internal/domain/stay"
	"roomstay/internal/pkg/caldate"
)

// ArrivalDates enumerates every offerable arrival date of a policy as of
// today: the intersection of the active window, the absolute booking window
// and the lead-day offsets, filtered by allowed arrival weekday. An empty
// effective window is a normal outcome and yields an empty set.
func ArrivalDates(s *stay.Stay, today caldate.Date) []caldate.Date {
	lower, upper, ok := s.BookableArrivalBounds(today)
	if !ok {
		return nil
	}

	var dates []caldate.Date
	for d := lower; !d.After(upper); d = d.AddDays(1) {
		if s.ArrivalWeekdays().Contains(d.Weekday()) {
			dates = append(dates, d)
		}
	}
	return dates
}

// DepartureDates lists the valid departure dates for a stay anchored at
// arrival, in ascending order. Candidates run from arrival+minNights to
// arrival+maxNights, constrained to the active window and the allowed
// departure weekdays, then filtered against the room's reservations; dates
// that would conflict are never returned.
func DepartureDates(arrival caldate.Date, s *stay.Stay, reservations []*reservation.Reservation) []caldate.Date {
	var candidates []caldate.Date
	for n := s.Nights().Min(); n <= s.Nights().Max(); n++ {
		d := arrival.AddDays(n)
		if s.AllowsDeparture(d) {
			candidates = append(candidates, d)
		}
	}
	return FilterReservedDates(candidates, reservations, arrival)
}

// IsValidArrival reports whether date can open a stay under the policy.
// Precondition for DepartureDates and the first click of a selection.
func IsValidArrival(d caldate.Date, s *stay.Stay) bool {
	return s.AllowsArrival(d)
}

// RoomArrivalDates merges the offerable arrival dates of every policy of a
// room into one deduplicated ascending list.
func RoomArrivalDates(policies []*stay.Stay, today caldate.Date) []caldate.Date {
	seen := make(map[caldate.Date]struct{})
	var merged []caldate.Date
	for _, s := range policies {
		for _, d := range ArrivalDates(s, today) {
			if _, dup := seen[d]; dup {
				continue
			}
			seen[d] = struct{}{}
			merged = append(merged, d)
		}
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Before(merged[j]) })
	return merged
}
