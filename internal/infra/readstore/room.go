package readstore

import (
	"context"

	"roomstay/internal/domain/room"
	"roomstay/internal/infra"
	"roomstay/internal/infra/db"

	"github.com/google/uuid"
)

const findAllRoomsSQL = `
SELECT r.id, r.location_id, l.name AS location_name, r.name,
       r.price_per_night_per_guest_cents, r.guest_capacity
FROM rooms r
JOIN locations l ON l.id = r.location_id
ORDER BY r.id
`

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

func (s *RoomReadStore) FindAll(ctx context.Context) ([]*room.Room, error) {
	rows, err := s.db.Query(ctx, findAllRoomsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query rooms", err)
	}
	defer rows.Close()

	var result []*room.Room
	for rows.Next() {
		var (
			id, locationID             uuid.UUID
			locationName, name         string
			pricePerNightPerGuestCents int64
			guestCapacity              int
		)
		if err := rows.Scan(&id, &locationID, &locationName, &name, &pricePerNightPerGuestCents, &guestCapacity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}

		r, err := room.NewRoom(id, locationID, locationName, name, pricePerNightPerGuestCents, guestCapacity)
		if err != nil {
			return nil, infra.WrapRepoErr("room row violates domain invariants", err)
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}

	return result, nil
}
