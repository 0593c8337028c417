package response

import (
	"time"

	"car-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Phone       *string    `json:"phone,omitempty"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	Customer    *CustomerResponse `json:"customer"`
}

func FromCustomerView(v *queries.AuthorizedCustomerView) *CustomerResponse {
	return &CustomerResponse{
		ID:          v.ID,
		Name:        v.Name,
		Email:       v.Email,
		Role:        v.Role,
		Phone:       v.Phone,
		LastLoginAt: v.LastLoginAt,
	}
}
