package api

import (
	"errors"
	"net/http"

	reqdto "roomstay/internal/handler/dto/request"
	resdto "roomstay/internal/handler/dto/response"
	"roomstay/internal/usecase/commands"
	"roomstay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands    commands.BookingCommands
	reservationQueries queries.ReservationQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, reservationQueries queries.ReservationQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands:    bookingCommands,
		reservationQueries: reservationQueries,
	}
}

// @Summary Create reservation
// @Description Book a room for the given arrival/departure dates
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [post]
func (h *BookingHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format",
		})
		return
	}

	view, err := h.bookingCommands.CreateReservation(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, commands.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Arrival date must precede departure date",
			})
		case errors.Is(err, commands.ErrNoMatchingPolicy):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "No stay policy covers the requested dates",
			})
		case errors.Is(err, commands.ErrNightsOutOfRange):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Stay length is outside the allowed night range",
			})
		case errors.Is(err, commands.ErrReservationConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Dates conflict with an existing reservation",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response, err := resdto.FromReservationView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusCreated, response)
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *BookingHandler) GetReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response, err := resdto.FromReservationView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary List room reservations
// @Description List the reservations of a room in arrival order
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /rooms/{id}/reservations [get]
func (h *BookingHandler) ListRoomReservations(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	views, err := h.reservationQueries.ListByRoom(c.Request.Context(), roomID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response, err := resdto.FromReservationViews(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, response)
}
