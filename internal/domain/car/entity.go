package car

import (
	"errors"
	"strings"
	"time"

	"car-rental/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus       = errors.New("invalid car status")
	ErrStatusNotSelectable = errors.New("status can only be set to available, maintenance or unavailable")
	ErrCarInUse            = errors.New("car is currently rented")
	ErrHasCommittedRentals = errors.New("car has confirmed or active rentals")
	ErrMileageDecrease     = errors.New("mileage cannot decrease")
	ErrEmptyPatch          = errors.New("no fields to update")
	ErrInvalidYear         = errors.New("invalid model year")
	ErrBlankField          = errors.New("field must not be blank")
	ErrCarNotRentable      = errors.New("car is not available for rental")
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusMaintenance Status = "maintenance"
	StatusUnavailable Status = "unavailable"
	StatusRented      Status = "rented"
)

func NewStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusAvailable, StatusMaintenance, StatusUnavailable, StatusRented:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string { return string(s) }

// Withdrawn statuses take the car out of service.
func (s Status) Withdrawn() bool {
	return s == StatusMaintenance || s == StatusUnavailable
}

type Car struct {
	id           uuid.UUID
	categoryID   uuid.UUID
	branchID     uuid.UUID
	brand        string
	model        string
	year         int
	color        *string
	licensePlate string
	imageURL     *string
	status       Status
	mileage      int
	createdAt    time.Time
	updatedAt    time.Time
}

func Reconstruct(
	id, categoryID, branchID uuid.UUID,
	brand, model string,
	year int,
	color *string,
	licensePlate string,
	imageURL *string,
	status Status,
	mileage int,
	createdAt, updatedAt time.Time,
) *Car {
	return &Car{
		id:           id,
		categoryID:   categoryID,
		branchID:     branchID,
		brand:        brand,
		model:        model,
		year:         year,
		color:        color,
		licensePlate: licensePlate,
		imageURL:     imageURL,
		status:       status,
		mileage:      mileage,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// EnsureRentable rejects bookings on a car that is not in service.
func (c *Car) EnsureRentable() error {
	if c.status != StatusAvailable {
		return ErrCarNotRentable
	}
	return nil
}

// ChangeStatus is the fleet-facing status switch. hasCommitted reports
// whether the car has confirmed or active rentals.
func (c *Car) ChangeStatus(to Status, hasCommitted bool, now time.Time) error {
	if to == StatusRented {
		return ErrStatusNotSelectable
	}
	if _, err := NewStatus(string(to)); err != nil {
		return err
	}
	if c.status == StatusRented {
		return ErrCarInUse
	}
	if to.Withdrawn() && hasCommitted {
		return ErrHasCommittedRentals
	}
	c.status = to
	c.updatedAt = now
	return nil
}

// HandOver marks the car as out with a customer.
func (c *Car) HandOver(now time.Time) {
	c.status = StatusRented
	c.updatedAt = now
}

// Release puts the car back in service at the recorded odometer reading.
func (c *Car) Release(mileage int, now time.Time) error {
	if mileage < c.mileage {
		return ErrMileageDecrease
	}
	c.mileage = mileage
	c.status = StatusAvailable
	c.updatedAt = now
	return nil
}

// Apply merges a descriptive patch; status and mileage are not patchable.
func (c *Car) Apply(p Patch, now time.Time) error {
	if p.IsEmpty() {
		return ErrEmptyPatch
	}
	if err := p.Validate(); err != nil {
		return err
	}
	c.categoryID = patch.Coalesce(p.CategoryID, c.categoryID)
	c.branchID = patch.Coalesce(p.BranchID, c.branchID)
	if p.Brand != nil {
		c.brand = strings.TrimSpace(*p.Brand)
	}
	if p.Model != nil {
		c.model = strings.TrimSpace(*p.Model)
	}
	c.year = patch.Coalesce(p.Year, c.year)
	if p.Color != nil {
		color := strings.TrimSpace(*p.Color)
		c.color = &color
	}
	if p.LicensePlate != nil {
		c.licensePlate = NormalizePlate(*p.LicensePlate)
	}
	if p.ImageURL != nil {
		url := strings.TrimSpace(*p.ImageURL)
		c.imageURL = &url
	}
	c.updatedAt = now
	return nil
}

func NormalizePlate(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func (c *Car) ID() uuid.UUID         { return c.id }
func (c *Car) CategoryID() uuid.UUID { return c.categoryID }
func (c *Car) BranchID() uuid.UUID   { return c.branchID }
func (c *Car) Brand() string         { return c.brand }
func (c *Car) Model() string         { return c.model }
func (c *Car) Year() int             { return c.year }
func (c *Car) Color() *string        { return c.color }
func (c *Car) LicensePlate() string  { return c.licensePlate }
func (c *Car) ImageURL() *string     { return c.imageURL }
func (c *Car) Status() Status        { return c.status }
func (c *Car) Mileage() int          { return c.mileage }
func (c *Car) CreatedAt() time.Time  { return c.createdAt }
func (c *Car) UpdatedAt() time.Time  { return c.updatedAt }
