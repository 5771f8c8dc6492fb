package api

import (
	"errors"
	"net/http"

	resdto "roomstay/internal/handler/dto/response"
	"roomstay/internal/handler/httperr"
	"roomstay/internal/pkg/caldate"
	"roomstay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
	}
}

// @Summary List rooms
// @Description List every bookable room
// @Tags availability
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *AvailabilityHandler) ListRooms(c *gin.Context) {
	views, err := h.availabilityQueries.Rooms(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load rooms", nil)
		return
	}

	response, err := resdto.FromRoomViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load rooms", nil)
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Arrival dates
// @Description List the offerable arrival dates of a room as of today
// @Tags availability
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.ArrivalDatesResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/arrival-dates [get]
func (h *AvailabilityHandler) ArrivalDates(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return
	}

	view, err := h.availabilityQueries.ArrivalDates(c.Request.Context(), roomID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load arrival dates", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromArrivalDatesView(view))
}

// @Summary Departure dates
// @Description List the valid departure dates for a stay anchored at the given arrival
// @Tags availability
// @Produce json
// @Param id path string true "Room ID"
// @Param arrival query string true "Arrival date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DepartureDatesResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/departure-dates [get]
func (h *AvailabilityHandler) DepartureDates(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return
	}

	arrival, err := caldate.Parse(c.Query("arrival"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid arrival date format", nil)
		return
	}

	view, err := h.availabilityQueries.DepartureDates(c.Request.Context(), roomID, arrival)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		case errors.Is(err, queries.ErrInvalidArrival):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Date is not a valid arrival for this room", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load departure dates", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDepartureDatesView(view))
}

// @Summary Departure index
// @Description Flattened departure-date index over every room and policy
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DepartureIndexResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /departure-index [get]
func (h *AvailabilityHandler) DepartureIndex(c *gin.Context) {
	view, err := h.availabilityQueries.DepartureIndex(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build departure index", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDepartureIndexView(view))
}
