//go:build unit || e2e

package builder

import (
	"time"

	"car-rental/internal/domain/payment"
	reqdto "car-rental/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentBuilder struct {
	RentalID      uuid.UUID
	Amount        decimal.Decimal
	Method        payment.Method
	TransactionID *string
	Now           time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		RentalID: uuid.New(),
		Amount:   decimal.NewFromInt(70),
		Method:   payment.MethodCreditCard,
		Now:      time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *PaymentBuilder) WithRentalID(id uuid.UUID) *PaymentBuilder {
	b.RentalID = id
	return b
}

func (b *PaymentBuilder) WithMethod(m payment.Method) *PaymentBuilder {
	b.Method = m
	return b
}

func (b *PaymentBuilder) WithTransactionID(id string) *PaymentBuilder {
	b.TransactionID = &id
	return b
}

func (b *PaymentBuilder) BuildDomain() (*payment.Payment, error) {
	return payment.NewCompletedPayment(b.RentalID, b.Amount, b.Method, b.TransactionID, b.Now)
}

func (b *PaymentBuilder) BuildDTO() reqdto.ProcessPaymentRequest {
	return reqdto.ProcessPaymentRequest{
		RentalID:      b.RentalID,
		PaymentMethod: b.Method.String(),
		TransactionID: b.TransactionID,
	}
}
