package queries

import (
	"context"

	"roomstay/internal/domain/schedule"
	"roomstay/internal/pkg/caldate"
	"roomstay/internal/pkg/clock"
	"roomstay/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound   = errs.New("room not found")
	ErrInvalidArrival = errs.New("date is not a valid arrival for this room")
)

// ScheduleReadStore materializes the immutable engine input. One snapshot
// serves one request; callers never mutate it.
type ScheduleReadStore interface {
	LoadSnapshot(ctx context.Context) (*schedule.Snapshot, error)
}

type AvailabilityQueries interface {
	ArrivalDates(ctx context.Context, roomID uuid.UUID) (*ArrivalDatesView, error)
	DepartureDates(ctx context.Context, roomID uuid.UUID, arrival caldate.Date) (*DepartureDatesView, error)
	DepartureIndex(ctx context.Context) (*DepartureIndexView, error)
	Rooms(ctx context.Context) ([]*RoomView, error)
}

type availabilityQueriesImpl struct {
	store ScheduleReadStore
	clock clock.Clock
}

func NewAvailabilityQueries(store ScheduleReadStore, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{
		store: store,
		clock: clk,
	}
}

func (q *availabilityQueriesImpl) ArrivalDates(ctx context.Context, roomID uuid.UUID) (*ArrivalDatesView, error) {
	snap, err := q.store.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if snap.Room(roomID) == nil {
		return nil, ErrRoomNotFound
	}

	today := q.clock.Today()
	return &ArrivalDatesView{
		RoomID: roomID,
		Today:  today,
		Dates:  schedule.RoomArrivalDates(snap.PoliciesForRoom(roomID), today),
	}, nil
}

// DepartureDates merges the valid departures of every policy of the room
// that admits the arrival. An arrival no policy admits is a client error,
// not an empty result.
func (q *availabilityQueriesImpl) DepartureDates(ctx context.Context, roomID uuid.UUID, arrival caldate.Date) (*DepartureDatesView, error) {
	snap, err := q.store.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if snap.Room(roomID) == nil {
		return nil, ErrRoomNotFound
	}

	reservations := snap.ReservationsForRoom(roomID)
	seen := make(map[caldate.Date]struct{})
	var merged []caldate.Date
	matched := false
	for _, policy := range snap.PoliciesForRoom(roomID) {
		if !schedule.IsValidArrival(arrival, policy) {
			continue
		}
		matched = true
		for _, d := range schedule.DepartureDates(arrival, policy, reservations) {
			if _, dup := seen[d]; dup {
				continue
			}
			seen[d] = struct{}{}
			merged = append(merged, d)
		}
	}
	if !matched {
		return nil, ErrInvalidArrival
	}
	caldate.Sort(merged)

	return &DepartureDatesView{
		RoomID:  roomID,
		Arrival: arrival,
		Dates:   merged,
	}, nil
}

func (q *availabilityQueriesImpl) DepartureIndex(ctx context.Context) (*DepartureIndexView, error) {
	snap, err := q.store.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	today := q.clock.Today()
	idx := schedule.BuildDepartureIndex(snap, today)

	dates := idx.Dates()
	caldate.Sort(dates)

	view := &DepartureIndexView{Today: today}
	for _, departure := range dates {
		for _, roomID := range idx.RoomsOn(departure) {
			for _, entry := range idx.Lookup(departure, roomID) {
				view.Entries = append(view.Entries, DepartureIndexEntry{
					Departure: departure,
					RoomID:    roomID,
					StayID:    entry.Stay.ID(),
					Arrival:   entry.Arrival,
					Nights:    entry.Arrival.DaysUntil(departure),
				})
			}
		}
	}
	return view, nil
}

func (q *availabilityQueriesImpl) Rooms(ctx context.Context) ([]*RoomView, error) {
	snap, err := q.store.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*RoomView, 0, len(snap.Rooms()))
	for _, r := range snap.Rooms() {
		views = append(views, &RoomView{
			ID:                         r.ID(),
			LocationID:                 r.LocationID(),
			LocationName:               r.LocationName(),
			Name:                       r.Name(),
			PricePerNightPerGuestCents: r.PricePerNightPerGuestCents(),
			GuestCapacity:              r.GuestCapacity(),
		})
	}
	return views, nil
}
