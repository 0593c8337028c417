package request

import (
	"car-rental/internal/domain/car"
	"car-rental/internal/domain/rental"

	"github.com/google/uuid"
)

type UpdateCarStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateCarRequest lists every editable field; anything else in the body is
// rejected by the strict JSON decoder.
type UpdateCarRequest struct {
	CategoryID   *uuid.UUID `json:"category_id,omitempty"`
	BranchID     *uuid.UUID `json:"branch_id,omitempty"`
	Brand        *string    `json:"brand,omitempty" binding:"omitempty,max=100"`
	Model        *string    `json:"model,omitempty" binding:"omitempty,max=100"`
	Year         *int       `json:"year,omitempty"`
	Color        *string    `json:"color,omitempty" binding:"omitempty,max=50"`
	LicensePlate *string    `json:"license_plate,omitempty" binding:"omitempty,max=20"`
	ImageURL     *string    `json:"image_url,omitempty" binding:"omitempty,max=500"`
}

func (r UpdateCarRequest) ToDomain() car.Patch {
	return car.Patch{
		CategoryID:   r.CategoryID,
		BranchID:     r.BranchID,
		Brand:        r.Brand,
		Model:        r.Model,
		Year:         r.Year,
		Color:        r.Color,
		LicensePlate: r.LicensePlate,
		ImageURL:     r.ImageURL,
	}
}

type AvailabilityQuery struct {
	StartDate string `form:"start_date" binding:"required,calendar_date"`
	EndDate   string `form:"end_date" binding:"required,calendar_date"`
}

func (q AvailabilityQuery) ToDomain() (rental.DateRange, error) {
	return rental.ParseDateRange(q.StartDate, q.EndDate)
}
