package response

import (
	"time"

	"roomstay/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	UserID uuid.UUID `json:"userId"`
	Token  string    `json:"token"`
}

type MeResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

func FromAuthorizedUserView(view *queries.AuthorizedUserView) *MeResponse {
	return &MeResponse{
		ID:        view.ID,
		Email:     view.Email,
		Role:      view.Role,
		LastLogin: view.LastLogin,
	}
}
