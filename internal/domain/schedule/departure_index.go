package schedule

import (
	"sort"

	"roomstay/internal/domain/stay"
	"roomstay/internal/pkg/caldate"

	"github.com/google/uuid"
)

// IndexEntry records that Stay permits a departure for a stay anchored at
// Arrival.
type IndexEntry struct {
	Stay    *stay.Stay
	Arrival caldate.Date
}

// DepartureIndex maps departure date -> room -> the (policy, arrival) pairs
// that satisfy that departure. It is a read-only value produced by
// BuildDepartureIndex; a new snapshot means a new index, never an in-place
// update, so concurrent readers may share one instance freely.
type DepartureIndex struct {
	entries map[caldate.Date]map[uuid.UUID][]IndexEntry
}

// BuildDepartureIndex walks every room, every policy of the room and every
// offerable arrival date, and records each conflict-filtered departure date
// under index[departure][room]. A room may satisfy the same departure from
// more than one policy or anchor; entries accumulate.
func BuildDepartureIndex(snapshot *Snapshot, today caldate.Date) *DepartureIndex {
	entries := make(map[caldate.Date]map[uuid.UUID][]IndexEntry)

	for _, r := range snapshot.Rooms() {
		roomID := r.ID()
		reservations := snapshot.ReservationsForRoom(roomID)

		for _, s := range snapshot.PoliciesForRoom(roomID) {
			for _, arrival := range ArrivalDates(s, today) {
				for _, departure := range DepartureDates(arrival, s, reservations) {
					byRoom, ok := entries[departure]
					if !ok {
						byRoom = make(map[uuid.UUID][]IndexEntry)
						entries[departure] = byRoom
					}
					byRoom[roomID] = append(byRoom[roomID], IndexEntry{Stay: s, Arrival: arrival})
				}
			}
		}
	}

	return &DepartureIndex{entries: entries}
}

// Lookup returns the (policy, arrival) pairs under which the room can
// release a stay on the given departure date.
func (idx *DepartureIndex) Lookup(departure caldate.Date, roomID uuid.UUID) []IndexEntry {
	return idx.entries[departure][roomID]
}

// DeparturesForRoom lists every departure date the index holds for a room,
// unordered.
func (idx *DepartureIndex) DeparturesForRoom(roomID uuid.UUID) []caldate.Date {
	var dates []caldate.Date
	for d, byRoom := range idx.entries {
		if len(byRoom[roomID]) > 0 {
			dates = append(dates, d)
		}
	}
	return dates
}

// RoomsOn lists the rooms with at least one entry on the departure date,
// ordered by ID for deterministic iteration.
func (idx *DepartureIndex) RoomsOn(departure caldate.Date) []uuid.UUID {
	byRoom := idx.entries[departure]
	ids := make([]uuid.UUID, 0, len(byRoom))
	for id := range byRoom {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

// Dates lists every departure date present in the index, unordered.
func (idx *DepartureIndex) Dates() []caldate.Date {
	dates := make([]caldate.Date, 0, len(idx.entries))
	for d := range idx.entries {
		dates = append(dates, d)
	}
	return dates
}

func (idx *DepartureIndex) Len() int {
	return len(idx.entries)
}
