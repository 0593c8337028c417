package response

import (
	"time"

	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	ID            uuid.UUID `json:"id"`
	RentalID      uuid.UUID `json:"rental_id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	CarID         uuid.UUID `json:"car_id"`
	CarBrand      string    `json:"brand"`
	CarModel      string    `json:"model"`
	CarImageURL   *string   `json:"image_url,omitempty"`
	CategoryName  string    `json:"category_name"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	RentalStatus  string    `json:"rental_status"`
	RentalAmount  string    `json:"final_amount"`
	Amount        string    `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	PaymentStatus string    `json:"payment_status"`
	TransactionID *string   `json:"transaction_id,omitempty"`
	RefundReason  *string   `json:"refund_reason,omitempty"`
	PaymentDate   time.Time `json:"payment_date"`
	CreatedAt     time.Time `json:"created_at"`
}

type PaymentListResponse struct {
	Items      []*PaymentResponse `json:"items"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

type RefundResponse struct {
	PaymentID    uuid.UUID `json:"payment_id"`
	RefundAmount string    `json:"refund_amount"`
	Reason       string    `json:"reason"`
}

func FromPaymentView(v *queries.PaymentView) (*PaymentResponse, error) {
	var res PaymentResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromPaymentViews(views []*queries.PaymentView, next *queries.Cursor) (*PaymentListResponse, error) {
	items := make([]*PaymentResponse, len(views))
	for i, v := range views {
		item, err := FromPaymentView(v)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	res := &PaymentListResponse{Items: items}
	if next != nil {
		res.NextCursor = next.After
	}
	return res, nil
}

func FromRefundResult(r *commands.RefundResult) *RefundResponse {
	return &RefundResponse{
		PaymentID:    r.PaymentID,
		RefundAmount: r.RefundAmount.StringFixed(2),
		Reason:       r.Reason,
	}
}
