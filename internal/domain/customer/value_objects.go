package customer

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")
	ErrEmptyName       = errors.New("name is required")
)

const (
	maxEmailLen       = 254
	minPasswordLen    = 8
	maxPasswordLength = 72
)

// Email is lower-cased and trimmed. Display names ("Jane <j@x.io>") and
// single-label domains are rejected.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || len(s) > maxEmailLen {
		return Email{}, ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return Email{}, ErrInvalidEmail
	}
	_, domain, _ := strings.Cut(s, "@")
	if !strings.Contains(domain, ".") || strings.HasSuffix(domain, ".") {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	switch {
	case len(s) < minPasswordLen:
		return Password{}, ErrPasswordTooWeak
	case len(s) > maxPasswordLength:
		return Password{}, ErrPasswordTooLong
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// Credentials is a login attempt, validated for shape only.
type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(rawEmail, rawPassword string) (Credentials, error) {
	email, err := NewEmail(rawEmail)
	if err != nil {
		return Credentials{}, err
	}
	password, err := NewPassword(rawPassword)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{email: email, password: password}, nil
}

func (c Credentials) Email() Email       { return c.email }
func (c Credentials) Password() Password { return c.password }
