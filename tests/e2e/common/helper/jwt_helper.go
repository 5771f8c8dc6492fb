//go:build e2e

package helper

import (
	"net/http"
	"testing"
	"time"

	"roomstay/internal/domain/user"
	"roomstay/internal/handler/dto/request"
	"roomstay/internal/handler/dto/response"
	"roomstay/internal/pkg/config"
	"roomstay/internal/pkg/jwt"
	"roomstay/tests/common/dbtest"
	"roomstay/tests/common/helper"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type LoginResponse = response.LoginResponse

type JWTTestHelper struct {
	pool *pgxpool.Pool
	cfg  config.JWTConfig
}

func NewJWTTestHelper(pool *pgxpool.Pool, cfg config.JWTConfig) *JWTTestHelper {
	return &JWTTestHelper{pool: pool, cfg: cfg}
}

func (h *JWTTestHelper) CreateTestUserWithDB(t *testing.T, db dbtest.DBLike, email, role string) uuid.UUID {
	t.Helper()
	return dbtest.CreateTestUser(t, db, email, role)
}

func (h *JWTTestHelper) LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := helper.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var loginRes LoginResponse
	err := helper.DecodeResponseBody(t, w.Body, &loginRes)
	require.NoError(t, err)
	require.NotEmpty(t, loginRes.Token, "Access token not found in response")

	return loginRes.Token
}

func (h *JWTTestHelper) CreateAndLoginWithDB(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	h.CreateTestUserWithDB(t, db, email, role)
	return h.LoginUser(t, router, email, "password123")
}

func (h *JWTTestHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, _ := time.ParseDuration(h.cfg.Duration)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTTestHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
