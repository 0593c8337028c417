package response

import (
	"car-rental/internal/usecase/queries"
)

type DiscountResponse struct {
	Code              string  `json:"code"`
	DiscountType      string  `json:"discount_type"`
	DiscountValue     string  `json:"discount_value"`
	MinRentalDays     int     `json:"min_rental_days"`
	MaxDiscountAmount *string `json:"max_discount_amount,omitempty"`
	ValidUntil        string  `json:"valid_until"`
	RentalDays        int     `json:"rental_days"`
}

func FromDiscountView(v *queries.DiscountView) (*DiscountResponse, error) {
	var res DiscountResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}
