//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"roomstay/internal/handler/api"
	resdto "roomstay/internal/handler/dto/response"
	"roomstay/internal/usecase/commands"
	"roomstay/internal/usecase/queries"
	"roomstay/tests/common/builder"
	"roomstay/tests/common/helper"
	commandsmock "roomstay/tests/mock/commands"
	queriesmock "roomstay/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/reservations", s.handler.CreateReservation)
	s.router.GET("/reservations/:id", s.handler.GetReservation)
	s.router.GET("/rooms/:id/reservations", s.handler.ListRoomReservations)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func reservationViewFixture(roomID uuid.UUID) *queries.ReservationView {
	arrival := builder.MustDate("2024-08-05")
	departure := builder.MustDate("2024-08-07")
	return &queries.ReservationView{
		ID:        uuid.New(),
		RoomID:    roomID,
		RoomName:  "Seaside Twin",
		Arrival:   arrival,
		Departure: departure,
		Nights:    arrival.DaysUntil(departure),
		Status:    "confirmed",
		GuestName: "Test Guest",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (s *BookingHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"
	roomID := uuid.New()

	validBody := map[string]any{
		"room_id":    roomID.String(),
		"arrival":    "2024-08-05",
		"departure":  "2024-08-07",
		"guest_name": "Test Guest",
	}

	testCases := []struct {
		name         string
		mutate       func(m map[string]any)
		setupMock    func()
		expectCode   int
		expectInBody string
	}{
		{
			name: "success",
			setupMock: func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
					Return(reservationViewFixture(roomID), nil)
			},
			expectCode:   http.StatusCreated,
			expectInBody: "Seaside Twin",
		},
		{
			name:       "missing guest name",
			mutate:     helper.Field("guest_name", nil),
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "malformed arrival date",
			mutate:     helper.Field("arrival", "08/05/2024"),
			expectCode: http.StatusBadRequest,
		},
		{
			name: "room not found",
			setupMock: func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
					Return(nil, commands.ErrRoomNotFound)
			},
			expectCode:   http.StatusNotFound,
			expectInBody: "Room not found",
		},
		{
			name: "inverted date range",
			setupMock: func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
					Return(nil, commands.ErrInvalidDateRange)
			},
			expectCode: http.StatusBadRequest,
		},
		{
			name: "no matching policy",
			setupMock: func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
					Return(nil, commands.ErrNoMatchingPolicy)
			},
			expectCode:   http.StatusUnprocessableEntity,
			expectInBody: "No stay policy",
		},
		{
			name: "nights out of range",
			setupMock: func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
					Return(nil, commands.ErrNightsOutOfRange)
			},
			expectCode: http.StatusUnprocessableEntity,
		},
		{
			name: "conflicting reservation",
			setupMock: func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
					Return(nil, commands.ErrReservationConflict)
			},
			expectCode:   http.StatusConflict,
			expectInBody: "conflict",
		},
		{
			name: "unexpected failure",
			setupMock: func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
					Return(nil, commands.ErrBookingFailed)
			},
			expectCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			body := make(map[string]any, len(validBody))
			for k, v := range validBody {
				body[k] = v
			}
			if tc.mutate != nil {
				tc.mutate(body)
			}
			if tc.setupMock != nil {
				tc.setupMock()
			}

			w := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
			s.Equal(tc.expectCode, w.Code, w.Body.String())
			if tc.expectInBody != "" {
				s.Contains(w.Body.String(), tc.expectInBody)
			}
		})
	}
}

func (s *BookingHandlerTestSuite) TestGetReservation() {
	roomID := uuid.New()
	view := reservationViewFixture(roomID)

	testCases := []struct {
		name       string
		path       string
		setupMock  func()
		expectCode int
	}{
		{
			name: "success",
			path: "/reservations/" + view.ID.String(),
			setupMock: func() {
				s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)
			},
			expectCode: http.StatusOK,
		},
		{
			name: "not found",
			path: "/reservations/" + uuid.New().String(),
			setupMock: func() {
				s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).
					Return(nil, queries.ErrReservationNotFound)
			},
			expectCode: http.StatusNotFound,
		},
		{
			name:       "malformed id",
			path:       "/reservations/not-a-uuid",
			expectCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			if tc.setupMock != nil {
				tc.setupMock()
			}

			w := helper.PerformRequest(s.T(), s.router, http.MethodGet, tc.path, nil, "")
			s.Equal(tc.expectCode, w.Code, w.Body.String())

			if tc.expectCode == http.StatusOK {
				var res resdto.ReservationResponse
				helper.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
				s.Equal(view.ID, res.ID)
				s.Equal(view.Arrival, res.Arrival)
			}
		})
	}
}

func (s *BookingHandlerTestSuite) TestListRoomReservations() {
	roomID := uuid.New()

	s.Run("success", func() {
		s.mockQueries.EXPECT().ListByRoom(gomock.Any(), roomID).
			Return([]*queries.ReservationView{reservationViewFixture(roomID)}, nil)

		w := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+roomID.String()+"/reservations", nil, "")
		s.Equal(http.StatusOK, w.Code, w.Body.String())

		var res []resdto.ReservationResponse
		helper.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Len(res, 1)
		s.Equal(roomID, res[0].RoomID)
	})

	s.Run("malformed room id", func() {
		w := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/xyz/reservations", nil, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}
