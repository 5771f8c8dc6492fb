package room

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomName     = errors.New("room name cannot be empty")
	ErrRoomNameTooLong   = errors.New("room name is too long (max 255 characters)")
	ErrInvalidCapacity   = errors.New("guest capacity must be positive")
	ErrNegativeNightRate = errors.New("price per night cannot be negative")
)

const (
	MaxRoomNameLength = 255
)

type Room struct {
	id                    uuid.UUID
	locationID            uuid.UUID
	locationName          string
	name                  string
	pricePerNightPerGuest int64 // cents
	guestCapacity         int
}

func NewRoom(id, locationID uuid.UUID, locationName, name string, pricePerNightPerGuestCents int64, guestCapacity int) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRoomName
	}
	if len(name) > MaxRoomNameLength {
		return nil, ErrRoomNameTooLong
	}
	if guestCapacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if pricePerNightPerGuestCents < 0 {
		return nil, ErrNegativeNightRate
	}

	return &Room{
		id:                    id,
		locationID:            locationID,
		locationName:          strings.TrimSpace(locationName),
		name:                  name,
		pricePerNightPerGuest: pricePerNightPerGuestCents,
		guestCapacity:         guestCapacity,
	}, nil
}

func (r *Room) ID() uuid.UUID                     { return r.id }
func (r *Room) LocationID() uuid.UUID             { return r.locationID }
func (r *Room) LocationName() string              { return r.locationName }
func (r *Room) Name() string                      { return r.name }
func (r *Room) PricePerNightPerGuestCents() int64 { return r.pricePerNightPerGuest }
func (r *Room) GuestCapacity() int                { return r.guestCapacity }
