package readstore

import (
	"context"
	"log/slog"

	"roomstay/internal/domain/schedule"
	"roomstay/internal/infra/db"
)

// ScheduleReadStore assembles the immutable engine snapshot from the room,
// stay and reservation tables. Skipped policies are logged here, once per
// load, so the warning carries the room they belong to.
type ScheduleReadStore struct {
	rooms        *RoomReadStore
	stays        *StayReadStore
	reservations *ReservationReadStore
}

func NewScheduleReadStore(dbtx db.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{
		rooms:        NewRoomReadStore(dbtx),
		stays:        NewStayReadStore(dbtx),
		reservations: NewReservationReadStore(dbtx),
	}
}

func (s *ScheduleReadStore) LoadSnapshot(ctx context.Context) (*schedule.Snapshot, error) {
	rooms, err := s.rooms.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	policies, skipped, err := s.stays.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, sk := range skipped {
		slog.Warn("skipping invalid stay policy",
			"room_id", sk.RoomID, "error", sk.Err.Error())
	}

	reservations, err := s.reservations.FindBlocking(ctx)
	if err != nil {
		return nil, err
	}

	catalog := schedule.NewPolicyCatalog(policies, skipped)
	return schedule.NewSnapshot(rooms, catalog, reservations), nil
}
