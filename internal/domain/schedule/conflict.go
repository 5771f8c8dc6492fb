package schedule

import (
	"roomstay/internal/domain/reservation"
	"roomstay/internal/pkg/caldate"
)

// FilterReservedDates drops candidate departure dates that would collide
// with an existing reservation of the room, given the arrival date anchoring
// the new stay. A candidate d is rejected when either
//
//  1. its departure instant falls inside a reservation's occupied span
//     (the new stay's last night double-books a reserved night), or
//  2. the candidate range engulfs the reservation: the anchor precedes the
//     reservation's arrival and d lies strictly after its departure, or the
//     anchor's arrival instant sits inside the reservation's span while d
//     lies after its departure.
//
// d equal to a reservation's arrival date survives both checks: check-out
// at the departure instant followed by a new check-in at the later arrival
// instant the same day is legal turnover.
//
// Plain interval overlap is necessary but not sufficient here; a range that
// brackets a reservation without touching its boundary instants must still
// be rejected, which is what the engulf branch does.
func FilterReservedDates(candidates []caldate.Date, reservations []*reservation.Reservation, anchor caldate.Date) []caldate.Date {
	if len(reservations) == 0 {
		return candidates
	}

	kept := make([]caldate.Date, 0, len(candidates))
	for _, d := range candidates {
		if !conflictsWithAny(d, reservations, anchor) {
			kept = append(kept, d)
		}
	}
	return kept
}

func conflictsWithAny(d caldate.Date, reservations []*reservation.Reservation, anchor caldate.Date) bool {
	departureInstant := reservation.DepartureInstant(d)

	for _, r := range reservations {
		if r.OccupiedSpan().ContainsInstant(departureInstant) {
			return true
		}

		// Engulf: two branches preserved from the observed behavior of the
		// calendar; the second is checked at whole-day granularity.
		if d.After(r.Departure()) {
			if anchor.Before(r.Arrival()) {
				return true
			}
			if !anchor.Before(r.Arrival()) && !anchor.After(r.Departure()) {
				return true
			}
		}
	}
	return false
}

// HasConflict reports whether the whole candidate range [arrival, departure]
// collides with any reservation of the room.
func HasConflict(arrival, departure caldate.Date, reservations []*reservation.Reservation) bool {
	return conflictsWithAny(departure, reservations, arrival)
}
