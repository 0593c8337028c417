package request

import (
	"strings"

	"car-rental/internal/domain/rental"
	"car-rental/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRentalRequest struct {
	CarID        uuid.UUID `json:"car_id" binding:"required"`
	StartDate    string    `json:"start_date" binding:"required,calendar_date"`
	EndDate      string    `json:"end_date" binding:"required,calendar_date"`
	DiscountCode *string   `json:"discount_code,omitempty" binding:"omitempty,upper_code"`
}

func (r CreateRentalRequest) GetDiscountCode() *string {
	if r.DiscountCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.DiscountCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r CreateRentalRequest) ToCommand() (commands.CreateRentalRequest, error) {
	start, err := rental.ParseDate(r.StartDate)
	if err != nil {
		return commands.CreateRentalRequest{}, err
	}
	end, err := rental.ParseDate(r.EndDate)
	if err != nil {
		return commands.CreateRentalRequest{}, err
	}
	return commands.CreateRentalRequest{
		CarID:        r.CarID,
		StartDate:    start,
		EndDate:      end,
		DiscountCode: r.GetDiscountCode(),
	}, nil
}

type UpdateRentalStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ReturnCarRequest struct {
	EndMileage *int `json:"end_mileage" binding:"required"`
}

type ListRentalsQuery struct {
	Status *string `form:"status"`
	Cursor string  `form:"cursor"`
	Limit  int     `form:"limit" binding:"omitempty,min=1"`
}
