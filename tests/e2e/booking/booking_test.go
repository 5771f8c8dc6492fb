//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"roomstay/internal/domain/user"
	"roomstay/internal/handler/dto/request"
	"roomstay/internal/handler/dto/response"
	"roomstay/internal/pkg/caldate"
	"roomstay/tests/common/dbtest"
	"roomstay/tests/common/helper"
	"roomstay/tests/e2e"
	jwtHelper "roomstay/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	roomsURL        = "/api/rooms"
	reservationsURL = "/api/reservations"
)

type bookingSuite struct {
	e2e.SharedSuite
	jwtHelper *jwtHelper.JWTTestHelper

	today  caldate.Date
	roomID uuid.UUID
	resID  uuid.UUID
	token  string
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = jwtHelper.NewJWTTestHelper(s.DB, s.Config.JWT)

	loc, err := time.LoadLocation(s.Config.Booking.TimeZone)
	require.NoError(s.T(), err)
	s.today = caldate.FromTime(time.Now().In(loc))
}

// 今日を起点に、全曜日・2〜7泊のポリシーと既存予約(today+10 〜 today+12)を投入する
func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	t := s.T()
	s.roomID = dbtest.CreateTestRoom(t, s.DB, "Seaside Twin")
	dbtest.CreateTestStay(t, s.DB, s.roomID, s.today, s.today.AddDays(90), 2, 7)
	s.resID = dbtest.CreateTestReservation(t, s.DB, s.roomID,
		s.today.AddDays(10), s.today.AddDays(12), "Existing Guest")
	s.token = s.jwtHelper.CreateAndLoginWithDB(t, s.DB, s.Router, "staff@example.com", string(user.RoleStaff))
}

func (s *bookingSuite) arrivalDatesURL() string {
	return fmt.Sprintf("%s/%s/arrival-dates", roomsURL, s.roomID)
}

func (s *bookingSuite) departureDatesURL(arrival caldate.Date) string {
	return fmt.Sprintf("%s/%s/departure-dates?arrival=%s", roomsURL, s.roomID, arrival)
}

func (s *bookingSuite) TestListRooms() {
	s.Run("登録済みの部屋が一覧に含まれる", func() {
		t := s.T()

		w := helper.PerformRequest(t, s.Router, http.MethodGet, roomsURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var rooms []response.RoomResponse
		require.NoError(t, helper.DecodeResponseBody(t, w.Body, &rooms))
		require.Len(t, rooms, 1)
		require.Equal(t, s.roomID, rooms[0].ID)
		require.Equal(t, "Seaside Twin", rooms[0].Name)
		require.Equal(t, "Default Location", rooms[0].LocationName)
	})
}

func (s *bookingSuite) TestArrivalDates() {
	s.Run("有効期間内の日が到着日として提示される", func() {
		t := s.T()

		w := helper.PerformRequest(t, s.Router, http.MethodGet, s.arrivalDatesURL(), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.ArrivalDatesResponse
		require.NoError(t, helper.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, s.roomID, res.RoomID)
		require.NotEmpty(t, res.Dates)

		require.Contains(t, res.Dates, s.today, "今日が到着可能であること")
		require.Contains(t, res.Dates, s.today.AddDays(90), "有効期間の末日まで到着可能であること")
		for _, d := range res.Dates {
			require.False(t, d.Before(s.today), "過去の日が含まれないこと")
			require.False(t, d.After(s.today.AddDays(90)), "有効期間を超えた日が含まれないこと")
		}
	})

	s.Run("存在しない部屋は404", func() {
		t := s.T()

		url := fmt.Sprintf("%s/%s/arrival-dates", roomsURL, uuid.New())
		w := helper.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *bookingSuite) TestDepartureDates() {
	s.Run("泊数範囲と既存予約で出発日が絞られる", func() {
		t := s.T()

		arrival := s.today.AddDays(7)
		w := helper.PerformRequest(t, s.Router, http.MethodGet, s.departureDatesURL(arrival), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.DepartureDatesResponse
		require.NoError(t, helper.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, arrival, res.Arrival)

		require.NotContains(t, res.Dates, s.today.AddDays(8), "最低泊数未満の出発日は除外されること")
		require.Contains(t, res.Dates, s.today.AddDays(9), "2泊の出発日は提示されること")
		require.Contains(t, res.Dates, s.today.AddDays(10), "既存予約の到着日での同日出発は許されること")
		require.NotContains(t, res.Dates, s.today.AddDays(11), "既存予約をまたぐ出発日は除外されること")
	})

	s.Run("どのポリシーも許さない到着日は400", func() {
		t := s.T()

		arrival := s.today.AddDays(95)
		w := helper.PerformRequest(t, s.Router, http.MethodGet, s.departureDatesURL(arrival), nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("既存予約の滞在中を起点にすると出発日が空になる", func() {
		t := s.T()

		arrival := s.today.AddDays(11)
		w := helper.PerformRequest(t, s.Router, http.MethodGet, s.departureDatesURL(arrival), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.DepartureDatesResponse
		require.NoError(t, helper.DecodeResponseBody(t, w.Body, &res))
		require.Empty(t, res.Dates, "滞在中の日を起点にした出発日は全て競合すること")
	})
}

func (s *bookingSuite) TestCreateReservation() {
	tests := []struct {
		name           string
		arrivalOffset  int
		nights         int
		authenticated  bool
		expectedStatus int
		description    string
	}{
		{
			name:           "正常な予約",
			arrivalOffset:  7,
			nights:         2,
			authenticated:  true,
			expectedStatus: http.StatusCreated,
			description:    "ポリシーに合致する期間で予約できること",
		},
		{
			name:           "既存予約との競合",
			arrivalOffset:  9,
			nights:         2,
			authenticated:  true,
			expectedStatus: http.StatusConflict,
			description:    "既存予約と重なる期間は拒否されること",
		},
		{
			name:           "泊数超過",
			arrivalOffset:  20,
			nights:         9,
			authenticated:  true,
			expectedStatus: http.StatusUnprocessableEntity,
			description:    "最大泊数を超える期間は拒否されること",
		},
		{
			name:           "ポリシー対象外の期間",
			arrivalOffset:  95,
			nights:         2,
			authenticated:  true,
			expectedStatus: http.StatusUnprocessableEntity,
			description:    "有効期間外の到着日は拒否されること",
		},
		{
			name:           "到着日が出発日以降",
			arrivalOffset:  9,
			nights:         -2,
			authenticated:  true,
			expectedStatus: http.StatusBadRequest,
			description:    "逆転した期間は拒否されること",
		},
		{
			name:           "認証なし",
			arrivalOffset:  7,
			nights:         2,
			authenticated:  false,
			expectedStatus: http.StatusUnauthorized,
			description:    "未認証では予約できないこと",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			arrival := s.today.AddDays(tt.arrivalOffset)
			departure := arrival.AddDays(tt.nights)
			reqBody := request.CreateReservationRequest{
				RoomID:    s.roomID,
				Arrival:   arrival.String(),
				Departure: departure.String(),
				GuestName: "Test Guest",
			}

			token := ""
			if tt.authenticated {
				token = s.token
			}

			w := helper.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
			require.Equal(t, tt.expectedStatus, w.Code, "%s: %s", tt.description, w.Body.String())

			if tt.expectedStatus == http.StatusCreated {
				var res response.ReservationResponse
				require.NoError(t, helper.DecodeResponseBody(t, w.Body, &res))
				require.Equal(t, s.roomID, res.RoomID)
				require.Equal(t, arrival, res.Arrival)
				require.Equal(t, departure, res.Departure)
				require.Equal(t, tt.nights, res.Nights)
				require.Equal(t, "confirmed", res.Status)
			}
		})
	}
}

func (s *bookingSuite) TestGetReservation() {
	s.Run("IDで予約を取得できる", func() {
		t := s.T()

		url := fmt.Sprintf("%s/%s", reservationsURL, s.resID)
		w := helper.PerformRequest(t, s.Router, http.MethodGet, url, nil, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.ReservationResponse
		require.NoError(t, helper.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, s.resID, res.ID)
		require.Equal(t, "Existing Guest", res.GuestName)
		require.Equal(t, "Seaside Twin", res.RoomName)
	})

	s.Run("存在しない予約は404", func() {
		t := s.T()

		url := fmt.Sprintf("%s/%s", reservationsURL, uuid.New())
		w := helper.PerformRequest(t, s.Router, http.MethodGet, url, nil, s.token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *bookingSuite) TestDepartureIndex() {
	s.Run("管理者は全部屋の出発日索引を引ける", func() {
		t := s.T()
		adminToken := s.jwtHelper.CreateAndLoginWithDB(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		w := helper.PerformRequest(t, s.Router, http.MethodGet, "/api/departure-index", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.DepartureIndexResponse
		require.NoError(t, helper.DecodeResponseBody(t, w.Body, &res))
		require.NotEmpty(t, res.Entries)

		for _, e := range res.Entries {
			require.Equal(t, s.roomID, e.RoomID)
			require.True(t, e.Arrival.Before(e.Departure), "到着日は出発日より前であること")
			require.Equal(t, e.Arrival.DaysUntil(e.Departure), e.Nights)
		}
	})

	s.Run("スタッフ権限では引けない", func() {
		t := s.T()

		w := helper.PerformRequest(t, s.Router, http.MethodGet, "/api/departure-index", nil, s.token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("認証なしでは引けない", func() {
		t := s.T()

		w := helper.PerformRequest(t, s.Router, http.MethodGet, "/api/departure-index", nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
