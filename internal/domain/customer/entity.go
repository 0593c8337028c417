package customer

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	id           uuid.UUID
	name         string
	email        Email
	passwordHash string
	role         Role
	phone        *string
	isActive     bool
	lastLoginAt  *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewCustomer(name string, email Email, passwordHash string, role Role, phone *string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &Customer{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		phone:        phone,
		isActive:     true,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	name string,
	email Email,
	passwordHash string,
	role Role,
	phone *string,
	isActive bool,
	lastLoginAt *time.Time,
	createdAt, updatedAt time.Time,
) *Customer {
	return &Customer{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		phone:        phone,
		isActive:     isActive,
		lastLoginAt:  lastLoginAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (c *Customer) ID() uuid.UUID           { return c.id }
func (c *Customer) Name() string            { return c.name }
func (c *Customer) Email() Email            { return c.email }
func (c *Customer) PasswordHash() string    { return c.passwordHash }
func (c *Customer) Role() Role              { return c.role }
func (c *Customer) Phone() *string          { return c.phone }
func (c *Customer) IsActive() bool          { return c.isActive }
func (c *Customer) LastLoginAt() *time.Time { return c.lastLoginAt }
func (c *Customer) CreatedAt() time.Time    { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time    { return c.updatedAt }
