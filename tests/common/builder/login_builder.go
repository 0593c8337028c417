//go:build unit || e2e

package builder

import (
	reqdto "car-rental/internal/handler/dto/request"
	"car-rental/tests/common/dbtest"
)

type LoginBuilder struct {
	email    string
	password string
}

// NewLoginBuilder starts from the credentials dbtest seeds for every customer.
func NewLoginBuilder() *LoginBuilder {
	return &LoginBuilder{
		email:    "test@example.com",
		password: dbtest.TestPassword,
	}
}

func (b *LoginBuilder) WithEmail(email string) *LoginBuilder {
	b.email = email
	return b
}

func (b *LoginBuilder) WithPassword(password string) *LoginBuilder {
	b.password = password
	return b
}

func (b *LoginBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.email,
		Password: b.password,
	}
}
