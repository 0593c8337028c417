package request

import (
	"car-rental/internal/usecase/commands"

	"github.com/google/uuid"
)

type ProcessPaymentRequest struct {
	RentalID      uuid.UUID `json:"rental_id" binding:"required"`
	PaymentMethod string    `json:"payment_method" binding:"required,oneof=credit_card debit_card cash bank_transfer paypal"`
	TransactionID *string   `json:"transaction_id,omitempty" binding:"omitempty,max=100"`
}

func (r ProcessPaymentRequest) ToCommand() commands.ProcessPaymentRequest {
	return commands.ProcessPaymentRequest{
		RentalID:      r.RentalID,
		Method:        r.PaymentMethod,
		TransactionID: r.TransactionID,
	}
}

type RefundRequest struct {
	Reason *string `json:"reason,omitempty" binding:"omitempty,max=500"`
}

func (r RefundRequest) GetReason() string {
	if r.Reason == nil {
		return ""
	}
	return *r.Reason
}

type ListPaymentsQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1"`
}
