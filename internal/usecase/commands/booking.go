package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"roomstay/internal/domain/reservation"
	"roomstay/internal/domain/schedule"
	"roomstay/internal/infra"
	"roomstay/internal/pkg/caldate"
	"roomstay/internal/pkg/clock"
	"roomstay/internal/pkg/errs"
	"roomstay/internal/usecase/queries"
)

var (
	ErrRoomNotFound        = errs.New("room not found")
	ErrInvalidDateRange    = errs.New("arrival date must precede departure date")
	ErrNoMatchingPolicy    = errs.New("no stay policy covers the requested dates")
	ErrNightsOutOfRange    = errs.New("stay length is outside the policy's night range")
	ErrReservationConflict = errs.New("dates conflict with an existing reservation")
	ErrBookingFailed       = errs.New("failed to create reservation")
)

type CreateReservationInput struct {
	RoomID     uuid.UUID
	Arrival    caldate.Date
	Departure  caldate.Date
	GuestName  string
	GuestEmail string
}

// ReservationWriteRepo persists reservations. The database carries an
// exclusion constraint over the occupied date range, so a concurrent
// booking that slipped past the snapshot check still surfaces as
// KindConflict here.
type ReservationWriteRepo interface {
	Create(ctx context.Context, res *reservation.Reservation) error
}

type BookingCommands interface {
	CreateReservation(ctx context.Context, input CreateReservationInput) (*queries.ReservationView, error)
}

type bookingCommandsImpl struct {
	scheduleStore queries.ScheduleReadStore
	readStore     queries.ReservationReadStore
	writeRepo     ReservationWriteRepo
	clock         clock.Clock
}

func NewBookingCommands(
	scheduleStore queries.ScheduleReadStore,
	readStore queries.ReservationReadStore,
	writeRepo ReservationWriteRepo,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		scheduleStore: scheduleStore,
		readStore:     readStore,
		writeRepo:     writeRepo,
		clock:         clk,
	}
}

// CreateReservation replays the requested range through the selection
// machine against a fresh snapshot, so the API enforces exactly the rules
// an interactive picker would.
func (c *bookingCommandsImpl) CreateReservation(ctx context.Context, input CreateReservationInput) (*queries.ReservationView, error) {
	if !input.Arrival.Before(input.Departure) {
		return nil, ErrInvalidDateRange
	}

	snap, err := c.scheduleStore.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if snap.Room(input.RoomID) == nil {
		return nil, ErrRoomNotFound
	}

	intent, err := c.validateSelection(snap, input)
	if err != nil {
		return nil, err
	}

	res, err := reservation.NewReservation(
		intent.RoomID, intent.Arrival, intent.Departure,
		input.GuestName, input.GuestEmail, c.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingFailed)
	}

	if err := c.writeRepo.Create(ctx, res); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrReservationConflict
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrBookingFailed)
	}

	view, err := c.readStore.FindByID(ctx, res.ID())
	if err != nil {
		slog.Warn("reservation created but readback failed",
			"reservation_id", res.ID(), "error", err.Error())
		return nil, errs.Mark(err, ErrBookingFailed)
	}
	return view, nil
}

func (c *bookingCommandsImpl) validateSelection(snap *schedule.Snapshot, input CreateReservationInput) (schedule.BookingIntent, error) {
	sel := schedule.NewSelection(snap)

	if !sel.Pick(input.RoomID, input.Arrival) {
		return schedule.BookingIntent{}, ErrNoMatchingPolicy
	}
	sel.Drag(input.Departure)

	if !sel.Release() {
		switch sel.LastRejectReason() {
		case schedule.RejectNightsOutOfRange:
			return schedule.BookingIntent{}, ErrNightsOutOfRange
		case schedule.RejectConflictsWithReservation:
			return schedule.BookingIntent{}, ErrReservationConflict
		default:
			return schedule.BookingIntent{}, ErrNoMatchingPolicy
		}
	}

	intent, ok := sel.Finalize()
	if !ok {
		return schedule.BookingIntent{}, ErrBookingFailed
	}
	return intent, nil
}
