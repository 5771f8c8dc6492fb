package request

import (
	"roomstay/internal/pkg/caldate"
	"roomstay/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RoomID     uuid.UUID `json:"room_id" binding:"required"`
	Arrival    string    `json:"arrival" binding:"required"`
	Departure  string    `json:"departure" binding:"required"`
	GuestName  string    `json:"guest_name" binding:"required"`
	GuestEmail string    `json:"guest_email,omitempty"`
}

func (r CreateReservationRequest) ToInput() (commands.CreateReservationInput, error) {
	arrival, err := caldate.Parse(r.Arrival)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	departure, err := caldate.Parse(r.Departure)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}

	return commands.CreateReservationInput{
		RoomID:     r.RoomID,
		Arrival:    arrival,
		Departure:  departure,
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
	}, nil
}
