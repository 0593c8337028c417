//go:build unit || e2e

package builder

import (
	"time"

	"car-rental/internal/domain/car"
	reqdto "car-rental/internal/handler/dto/request"

	"github.com/google/uuid"
)

type CarBuilder struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	BranchID     uuid.UUID
	Brand        string
	Model        string
	Year         int
	LicensePlate string
	Status       car.Status
	Mileage      int
}

func NewCarBuilder() *CarBuilder {
	return &CarBuilder{
		ID:           uuid.New(),
		CategoryID:   uuid.New(),
		BranchID:     uuid.New(),
		Brand:        "Toyota",
		Model:        "Corolla",
		Year:         2022,
		LicensePlate: "ABC-1234",
		Status:       car.StatusAvailable,
		Mileage:      12000,
	}
}

func (b *CarBuilder) WithStatus(status car.Status) *CarBuilder {
	b.Status = status
	return b
}

func (b *CarBuilder) WithMileage(m int) *CarBuilder {
	b.Mileage = m
	return b
}

func (b *CarBuilder) BuildDomain() *car.Car {
	created := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	return car.Reconstruct(
		b.ID, b.CategoryID, b.BranchID,
		b.Brand, b.Model,
		b.Year,
		nil,
		b.LicensePlate,
		nil,
		b.Status,
		b.Mileage,
		created, created,
	)
}

func (b *CarBuilder) BuildUpdateDTO() reqdto.UpdateCarRequest {
	brand := b.Brand
	year := b.Year
	return reqdto.UpdateCarRequest{
		Brand: &brand,
		Year:  &year,
	}
}
