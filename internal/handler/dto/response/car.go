package response

import (
	"time"

	"car-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarResponse struct {
	ID           uuid.UUID `json:"id"`
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	DailyRate    string    `json:"daily_rate"`
	BranchID     uuid.UUID `json:"branch_id"`
	BranchName   string    `json:"branch_name"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	Color        *string   `json:"color,omitempty"`
	LicensePlate string    `json:"license_plate"`
	ImageURL     *string   `json:"image_url,omitempty"`
	Status       string    `json:"status"`
	Mileage      int       `json:"mileage"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AvailabilityResponse struct {
	CarID     uuid.UUID `json:"car_id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	CarStatus string    `json:"car_status"`
	Available bool      `json:"available"`
}

func FromCarView(v *queries.CarView) (*CarResponse, error) {
	var res CarResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromAvailabilityView(v *queries.AvailabilityView) (*AvailabilityResponse, error) {
	var res AvailabilityResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}
