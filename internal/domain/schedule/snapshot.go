// Package schedule implements the stay-availability and reservation-conflict
// engine. Every computation is a pure function over an immutable Snapshot of
// rooms, stay policies, reservations and "today"; consumers refresh the
// snapshot after store writes and recompute.
package schedule

import (
	"sort"

	"roomstay/internal/domain/reservation"
	"roomstay/internal/domain/room"
	"roomstay/internal/domain/stay"

	"github.com/google/uuid"
)

// PolicyCatalog groups stay policies by room. It holds no logic beyond
// lookup; records that failed validation at load time are carried as
// warnings so callers can log them.
type PolicyCatalog struct {
	byRoom  map[uuid.UUID][]*stay.Stay
	skipped []SkippedPolicy
}

// SkippedPolicy records a policy excluded from the catalog because its
// source record failed an invariant. Not fatal to the catalog.
type SkippedPolicy struct {
	RoomID uuid.UUID
	Err    error
}

func NewPolicyCatalog(policies []*stay.Stay, skipped []SkippedPolicy) *PolicyCatalog {
	byRoom := make(map[uuid.UUID][]*stay.Stay, len(policies))
	for _, s := range policies {
		byRoom[s.RoomID()] = append(byRoom[s.RoomID()], s)
	}
	return &PolicyCatalog{byRoom: byRoom, skipped: skipped}
}

func (c *PolicyCatalog) ForRoom(roomID uuid.UUID) []*stay.Stay {
	return c.byRoom[roomID]
}

func (c *PolicyCatalog) Skipped() []SkippedPolicy {
	return c.skipped
}

func (c *PolicyCatalog) Len() int {
	n := 0
	for _, ss := range c.byRoom {
		n += len(ss)
	}
	return n
}

// Snapshot is the immutable input of every engine computation. Concurrent
// readers may share one instance; nothing is mutated after construction.
type Snapshot struct {
	rooms        []*room.Room
	policies     *PolicyCatalog
	reservations map[uuid.UUID][]*reservation.Reservation
}

func NewSnapshot(rooms []*room.Room, policies *PolicyCatalog, reservations []*reservation.Reservation) *Snapshot {
	byRoom := make(map[uuid.UUID][]*reservation.Reservation, len(rooms))
	for _, r := range reservations {
		byRoom[r.RoomID()] = append(byRoom[r.RoomID()], r)
	}

	sorted := make([]*room.Room, len(rooms))
	copy(sorted, rooms)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID().String() < sorted[j].ID().String()
	})

	return &Snapshot{
		rooms:        sorted,
		policies:     policies,
		reservations: byRoom,
	}
}

func (s *Snapshot) Rooms() []*room.Room {
	return s.rooms
}

func (s *Snapshot) Room(roomID uuid.UUID) *room.Room {
	for _, r := range s.rooms {
		if r.ID() == roomID {
			return r
		}
	}
	return nil
}

func (s *Snapshot) PoliciesForRoom(roomID uuid.UUID) []*stay.Stay {
	return s.policies.ForRoom(roomID)
}

func (s *Snapshot) ReservationsForRoom(roomID uuid.UUID) []*reservation.Reservation {
	return s.reservations[roomID]
}

func (s *Snapshot) SkippedPolicies() []SkippedPolicy {
	return s.policies.Skipped()
}
