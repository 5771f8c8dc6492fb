//go:build unit || e2e

package builder

import (
	domroom "roomstay/internal/domain/room"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID                         uuid.UUID
	LocationID                 uuid.UUID
	LocationName               string
	Name                       string
	PricePerNightPerGuestCents int64
	GuestCapacity              int
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:                         uuid.New(),
		LocationID:                 uuid.New(),
		LocationName:               "Lakeside Lodge",
		Name:                       "Room 101",
		PricePerNightPerGuestCents: 120_00,
		GuestCapacity:              2,
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) WithID(id uuid.UUID) *RoomBuilder {
	b.ID = id
	return b
}

func (b *RoomBuilder) BuildDomain() (*domroom.Room, error) {
	return domroom.NewRoom(b.ID, b.LocationID, b.LocationName, b.Name, b.PricePerNightPerGuestCents, b.GuestCapacity)
}

func (b *RoomBuilder) MustBuildDomain() *domroom.Room {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}
