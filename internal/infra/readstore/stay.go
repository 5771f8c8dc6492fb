package readstore

import (
	"context"

	"roomstay/internal/domain/schedule"
	"roomstay/internal/domain/stay"
	"roomstay/internal/infra"
	"roomstay/internal/infra/db"
	"roomstay/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findAllStaysSQL = `
SELECT id, room_id, active_from, active_to,
       booking_window_from, booking_window_to,
       min_lead_days, max_lead_days,
       arrival_weekdays, departure_weekdays,
       min_nights, max_nights
FROM stays
ORDER BY room_id, active_from
`

type StayReadStore struct {
	db db.DBTX
}

func NewStayReadStore(dbtx db.DBTX) *StayReadStore {
	return &StayReadStore{db: dbtx}
}

// FindAll loads every stay policy. Rows that fail a policy invariant are
// returned as skipped records instead of failing the load; a misconfigured
// policy must not take the whole catalog down.
func (s *StayReadStore) FindAll(ctx context.Context) ([]*stay.Stay, []schedule.SkippedPolicy, error) {
	rows, err := s.db.Query(ctx, findAllStaysSQL)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to query stays", err)
	}
	defer rows.Close()

	var (
		policies []*stay.Stay
		skipped  []schedule.SkippedPolicy
	)
	for rows.Next() {
		var (
			id, roomID                         uuid.UUID
			activeFrom, activeTo               pgtype.Date
			bookingWindowFrom, bookingWindowTo pgtype.Date
			minLeadDays, maxLeadDays           pgtype.Int4
			arrivalWeekdays, departureWeekdays []string
			minNights, maxNights               int
		)
		if err := rows.Scan(
			&id, &roomID, &activeFrom, &activeTo,
			&bookingWindowFrom, &bookingWindowTo,
			&minLeadDays, &maxLeadDays,
			&arrivalWeekdays, &departureWeekdays,
			&minNights, &maxNights,
		); err != nil {
			return nil, nil, infra.WrapRepoErr("failed to scan stay row", err)
		}

		policy, err := buildStay(id, roomID,
			activeFrom, activeTo, bookingWindowFrom, bookingWindowTo,
			minLeadDays, maxLeadDays, arrivalWeekdays, departureWeekdays,
			minNights, maxNights)
		if err != nil {
			skipped = append(skipped, schedule.SkippedPolicy{RoomID: roomID, Err: err})
			continue
		}
		policies = append(policies, policy)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, infra.WrapRepoErr("failed to iterate stay rows", err)
	}

	return policies, skipped, nil
}

func buildStay(
	id, roomID uuid.UUID,
	activeFrom, activeTo, bookingWindowFrom, bookingWindowTo pgtype.Date,
	minLeadDays, maxLeadDays pgtype.Int4,
	arrivalWeekdays, departureWeekdays []string,
	minNights, maxNights int,
) (*stay.Stay, error) {
	arrivalSet, err := stay.ParseWeekdaySet(arrivalWeekdays)
	if err != nil {
		return nil, err
	}
	departureSet, err := stay.ParseWeekdaySet(departureWeekdays)
	if err != nil {
		return nil, err
	}

	return stay.NewStay(stay.NewStayParams{
		ID:                id,
		RoomID:            roomID,
		ActiveFrom:        pgconv.DateFromPgtype(activeFrom),
		ActiveTo:          pgconv.DateFromPgtype(activeTo),
		BookingWindowFrom: pgconv.DatePtrFromPgtype(bookingWindowFrom),
		BookingWindowTo:   pgconv.DatePtrFromPgtype(bookingWindowTo),
		MinLeadDays:       pgconv.IntPtrFromPgtype(minLeadDays),
		MaxLeadDays:       pgconv.IntPtrFromPgtype(maxLeadDays),
		ArrivalWeekdays:   arrivalSet,
		DepartureWeekdays: departureSet,
		MinNights:         minNights,
		MaxNights:         maxNights,
	})
}
