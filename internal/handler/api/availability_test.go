//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"roomstay/internal/handler/api"
	resdto "roomstay/internal/handler/dto/response"
	"roomstay/internal/pkg/caldate"
	"roomstay/internal/pkg/errs"
	"roomstay/internal/usecase/queries"
	"roomstay/tests/common/builder"
	"roomstay/tests/common/helper"
	"roomstay/tests/common/httptest"
	queriesmock "roomstay/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)

	s.router.GET("/rooms", s.handler.ListRooms)
	s.router.GET("/rooms/:id/arrival-dates", s.handler.ArrivalDates)
	s.router.GET("/rooms/:id/departure-dates", s.handler.DepartureDates)
	s.router.GET("/departure-index", s.handler.DepartureIndex)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestArrivalDates() {
	roomID := uuid.New()
	today := builder.MustDate("2024-08-01")

	testCases := []struct {
		name       string
		url        string
		setupMock  func()
		expectCode int
		expectMsg  string
	}{
		{
			name: "room with offerable dates",
			url:  fmt.Sprintf("/rooms/%s/arrival-dates", roomID),
			setupMock: func() {
				s.mockQueries.EXPECT().ArrivalDates(gomock.Any(), roomID).
					Return(&queries.ArrivalDatesView{
						RoomID: roomID,
						Today:  today,
						Dates:  []caldate.Date{today, today.AddDays(1)},
					}, nil)
			},
			expectCode: http.StatusOK,
		},
		{
			name: "unknown room",
			url:  fmt.Sprintf("/rooms/%s/arrival-dates", roomID),
			setupMock: func() {
				s.mockQueries.EXPECT().ArrivalDates(gomock.Any(), roomID).
					Return(nil, queries.ErrRoomNotFound)
			},
			expectCode: http.StatusNotFound,
			expectMsg:  "Room not found",
		},
		{
			name:       "malformed room ID",
			url:        "/rooms/not-a-uuid/arrival-dates",
			setupMock:  func() {},
			expectCode: http.StatusBadRequest,
			expectMsg:  "Invalid room ID format",
		},
		{
			name: "query failure",
			url:  fmt.Sprintf("/rooms/%s/arrival-dates", roomID),
			setupMock: func() {
				s.mockQueries.EXPECT().ArrivalDates(gomock.Any(), roomID).
					Return(nil, errs.New("snapshot load failed"))
			},
			expectCode: http.StatusInternalServerError,
			expectMsg:  "Failed to load arrival dates",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setupMock()

			w := helper.PerformRequest(s.T(), s.router, http.MethodGet, tc.url, nil, "")

			if tc.expectCode == http.StatusOK {
				var res resdto.ArrivalDatesResponse
				httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
				s.Equal(roomID, res.RoomID)
				s.Len(res.Dates, 2)
			} else {
				httptest.AssertErrorResponse(s.T(), w, tc.expectCode, tc.expectMsg)
			}
		})
	}
}

func (s *AvailabilityHandlerTestSuite) TestDepartureDates() {
	roomID := uuid.New()
	arrival := builder.MustDate("2024-08-02")

	testCases := []struct {
		name       string
		url        string
		setupMock  func()
		expectCode int
		expectMsg  string
	}{
		{
			name: "valid arrival",
			url:  fmt.Sprintf("/rooms/%s/departure-dates?arrival=2024-08-02", roomID),
			setupMock: func() {
				s.mockQueries.EXPECT().DepartureDates(gomock.Any(), roomID, arrival).
					Return(&queries.DepartureDatesView{
						RoomID:  roomID,
						Arrival: arrival,
						Dates:   []caldate.Date{arrival.AddDays(2)},
					}, nil)
			},
			expectCode: http.StatusOK,
		},
		{
			name: "arrival not admitted by any policy",
			url:  fmt.Sprintf("/rooms/%s/departure-dates?arrival=2024-08-02", roomID),
			setupMock: func() {
				s.mockQueries.EXPECT().DepartureDates(gomock.Any(), roomID, arrival).
					Return(nil, queries.ErrInvalidArrival)
			},
			expectCode: http.StatusBadRequest,
			expectMsg:  "Date is not a valid arrival for this room",
		},
		{
			name:       "malformed arrival date",
			url:        fmt.Sprintf("/rooms/%s/departure-dates?arrival=08%%2F02%%2F2024", roomID),
			setupMock:  func() {},
			expectCode: http.StatusBadRequest,
			expectMsg:  "Invalid arrival date format",
		},
		{
			name: "unknown room",
			url:  fmt.Sprintf("/rooms/%s/departure-dates?arrival=2024-08-02", roomID),
			setupMock: func() {
				s.mockQueries.EXPECT().DepartureDates(gomock.Any(), roomID, arrival).
					Return(nil, queries.ErrRoomNotFound)
			},
			expectCode: http.StatusNotFound,
			expectMsg:  "Room not found",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setupMock()

			w := helper.PerformRequest(s.T(), s.router, http.MethodGet, tc.url, nil, "")

			if tc.expectCode == http.StatusOK {
				var res resdto.DepartureDatesResponse
				httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
				s.Equal(arrival, res.Arrival)
			} else {
				httptest.AssertErrorResponse(s.T(), w, tc.expectCode, tc.expectMsg)
			}
		})
	}
}

func (s *AvailabilityHandlerTestSuite) TestListRooms() {
	s.Run("load failure surfaces as a structured error", func() {
		s.mockQueries.EXPECT().Rooms(gomock.Any()).
			Return(nil, errs.New("snapshot load failed"))

		w := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Failed to load rooms")
	})
}

func (s *AvailabilityHandlerTestSuite) TestDepartureIndex() {
	s.Run("build failure surfaces as a structured error", func() {
		s.mockQueries.EXPECT().DepartureIndex(gomock.Any()).
			Return(nil, errs.New("snapshot load failed"))

		w := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/departure-index", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Failed to build departure index")
	})
}
