package response

import (
	"time"

	"roomstay/internal/pkg/caldate"
	"roomstay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID         uuid.UUID    `json:"id"`
	RoomID     uuid.UUID    `json:"roomId"`
	RoomName   string       `json:"roomName"`
	Arrival    caldate.Date `json:"arrival"`
	Departure  caldate.Date `json:"departure"`
	Nights     int          `json:"nights"`
	Status     string       `json:"status"`
	GuestName  string       `json:"guestName"`
	GuestEmail string       `json:"guestEmail,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

func FromReservationView(view *queries.ReservationView) (*ReservationResponse, error) {
	var resp ReservationResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromReservationViews(views []*queries.ReservationView) ([]*ReservationResponse, error) {
	result := make([]*ReservationResponse, len(views))
	for i, view := range views {
		resp, err := FromReservationView(view)
		if err != nil {
			return nil, err
		}
		result[i] = resp
	}
	return result, nil
}
