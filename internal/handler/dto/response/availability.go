package response

import (
	"roomstay/internal/pkg/caldate"
	"roomstay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID                         uuid.UUID `json:"id"`
	LocationID                 uuid.UUID `json:"locationId"`
	LocationName               string    `json:"locationName"`
	Name                       string    `json:"name"`
	PricePerNightPerGuestCents int64     `json:"pricePerNightPerGuestCents"`
	GuestCapacity              int       `json:"guestCapacity"`
}

type ArrivalDatesResponse struct {
	RoomID uuid.UUID      `json:"roomId"`
	Today  caldate.Date   `json:"today"`
	Dates  []caldate.Date `json:"dates"`
}

type DepartureDatesResponse struct {
	RoomID  uuid.UUID      `json:"roomId"`
	Arrival caldate.Date   `json:"arrival"`
	Dates   []caldate.Date `json:"dates"`
}

type DepartureIndexResponse struct {
	Today   caldate.Date                  `json:"today"`
	Entries []DepartureIndexEntryResponse `json:"entries"`
}

type DepartureIndexEntryResponse struct {
	Departure caldate.Date `json:"departure"`
	RoomID    uuid.UUID    `json:"roomId"`
	StayID    uuid.UUID    `json:"stayId"`
	Arrival   caldate.Date `json:"arrival"`
	Nights    int          `json:"nights"`
}

func FromRoomViews(views []*queries.RoomView) ([]*RoomResponse, error) {
	result := make([]*RoomResponse, len(views))
	for i, view := range views {
		var resp RoomResponse
		if err := copier.Copy(&resp, view); err != nil {
			return nil, err
		}
		result[i] = &resp
	}
	return result, nil
}

func FromArrivalDatesView(view *queries.ArrivalDatesView) *ArrivalDatesResponse {
	return &ArrivalDatesResponse{
		RoomID: view.RoomID,
		Today:  view.Today,
		Dates:  view.Dates,
	}
}

func FromDepartureDatesView(view *queries.DepartureDatesView) *DepartureDatesResponse {
	return &DepartureDatesResponse{
		RoomID:  view.RoomID,
		Arrival: view.Arrival,
		Dates:   view.Dates,
	}
}

func FromDepartureIndexView(view *queries.DepartureIndexView) *DepartureIndexResponse {
	entries := make([]DepartureIndexEntryResponse, len(view.Entries))
	for i, e := range view.Entries {
		entries[i] = DepartureIndexEntryResponse{
			Departure: e.Departure,
			RoomID:    e.RoomID,
			StayID:    e.StayID,
			Arrival:   e.Arrival,
			Nights:    e.Nights,
		}
	}
	return &DepartureIndexResponse{
		Today:   view.Today,
		Entries: entries,
	}
}
