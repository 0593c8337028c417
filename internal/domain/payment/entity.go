package payment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultRefundReason = "No reason provided"

var (
	ErrInvalidMethod   = errors.New("invalid payment method")
	ErrInvalidAmount   = errors.New("payment amount must not be negative")
	ErrAlreadyRefunded = errors.New("payment has already been refunded")
	ErrNotCompleted    = errors.New("only completed payments can be refunded")
)

type Payment struct {
	id            uuid.UUID
	rentalID      uuid.UUID
	amount        decimal.Decimal
	method        Method
	status        Status
	transactionID *string
	refundReason  *string
	paymentDate   time.Time
	createdAt     time.Time
}

// NewCompletedPayment records a settled charge. The gateway is simulated, so a
// transaction id is minted when the caller has none.
func NewCompletedPayment(rentalID uuid.UUID, amount decimal.Decimal, method Method, transactionID *string, now time.Time) (*Payment, error) {
	if !method.IsValid() {
		return nil, ErrInvalidMethod
	}
	if amount.IsNegative() {
		return nil, ErrInvalidAmount
	}

	txID := NewTransactionID()
	if transactionID != nil && strings.TrimSpace(*transactionID) != "" {
		txID = strings.TrimSpace(*transactionID)
	}

	return &Payment{
		id:            uuid.New(),
		rentalID:      rentalID,
		amount:        amount,
		method:        method,
		status:        StatusCompleted,
		transactionID: &txID,
		paymentDate:   now,
		createdAt:     now,
	}, nil
}

func NewTransactionID() string {
	return "TXN-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}

func Reconstruct(
	id, rentalID uuid.UUID,
	amount decimal.Decimal,
	method Method,
	status Status,
	transactionID, refundReason *string,
	paymentDate, createdAt time.Time,
) *Payment {
	return &Payment{
		id:            id,
		rentalID:      rentalID,
		amount:        amount,
		method:        method,
		status:        status,
		transactionID: transactionID,
		refundReason:  refundReason,
		paymentDate:   paymentDate,
		createdAt:     createdAt,
	}
}

// Refund marks a completed payment refunded and returns the reason recorded.
func (p *Payment) Refund(reason string) (string, error) {
	switch p.status {
	case StatusRefunded:
		return "", ErrAlreadyRefunded
	case StatusCompleted:
	default:
		return "", ErrNotCompleted
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultRefundReason
	}
	p.status = StatusRefunded
	p.refundReason = &reason
	return reason, nil
}

func (p *Payment) ID() uuid.UUID           { return p.id }
func (p *Payment) RentalID() uuid.UUID     { return p.rentalID }
func (p *Payment) Amount() decimal.Decimal { return p.amount }
func (p *Payment) Method() Method          { return p.method }
func (p *Payment) Status() Status          { return p.status }
func (p *Payment) TransactionID() *string  { return p.transactionID }
func (p *Payment) RefundReason() *string   { return p.refundReason }
func (p *Payment) PaymentDate() time.Time  { return p.paymentDate }
func (p *Payment) CreatedAt() time.Time    { return p.createdAt }
