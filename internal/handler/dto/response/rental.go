package response

import (
	"time"

	"car-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type RentalResponse struct {
	ID             uuid.UUID  `json:"id"`
	CustomerID     uuid.UUID  `json:"customer_id"`
	CustomerName   string     `json:"customer_name"`
	CustomerEmail  string     `json:"customer_email"`
	CarID          uuid.UUID  `json:"car_id"`
	CarBrand       string     `json:"brand"`
	CarModel       string     `json:"model"`
	LicensePlate   string     `json:"license_plate"`
	CarImageURL    *string    `json:"image_url,omitempty"`
	CategoryName   string     `json:"category_name"`
	BranchID       uuid.UUID  `json:"branch_id"`
	BranchName     string     `json:"branch_name"`
	StartDate      string     `json:"start_date"`
	EndDate        string     `json:"end_date"`
	TotalDays      int        `json:"total_days"`
	DailyRate      string     `json:"daily_rate"`
	TotalAmount    string     `json:"total_amount"`
	DiscountCodeID *uuid.UUID `json:"discount_code_id,omitempty"`
	DiscountCode   *string    `json:"discount_code,omitempty"`
	DiscountAmount string     `json:"discount_amount"`
	FinalAmount    string     `json:"final_amount"`
	Status         string     `json:"status"`
	StartMileage   *int       `json:"start_mileage,omitempty"`
	EndMileage     *int       `json:"end_mileage,omitempty"`
	PaymentStatus  *string    `json:"payment_status,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type RentalListResponse struct {
	Items      []*RentalResponse `json:"items"`
	NextCursor string            `json:"next_cursor,omitempty"`
}

func FromRentalView(v *queries.RentalView) (*RentalResponse, error) {
	var res RentalResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromRentalViews(views []*queries.RentalView, next *queries.Cursor) (*RentalListResponse, error) {
	items := make([]*RentalResponse, len(views))
	for i, v := range views {
		item, err := FromRentalView(v)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	res := &RentalListResponse{Items: items}
	if next != nil {
		res.NextCursor = next.After
	}
	return res, nil
}
