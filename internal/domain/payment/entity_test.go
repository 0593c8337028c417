//go:build unit

package payment_test

import (
	"strings"
	"testing"
	"time"

	"car-rental/internal/domain/payment"
	"car-rental/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)

func TestNewCompletedPayment(t *testing.T) {
	rentalID := uuid.New()

	t.Run("mints a transaction id", func(t *testing.T) {
		p, err := payment.NewCompletedPayment(rentalID, decimal.NewFromInt(70), payment.MethodCreditCard, nil, now)
		require.NoError(t, err)
		assert.Equal(t, payment.StatusCompleted, p.Status())
		assert.Equal(t, rentalID, p.RentalID())
		require.NotNil(t, p.TransactionID())
		assert.True(t, strings.HasPrefix(*p.TransactionID(), "TXN-"))
		assert.Equal(t, now, p.PaymentDate())
	})

	t.Run("keeps the caller's transaction id", func(t *testing.T) {
		p, err := payment.NewCompletedPayment(rentalID, decimal.NewFromInt(70), payment.MethodCash, ptr.Of(" ext-42 "), now)
		require.NoError(t, err)
		assert.Equal(t, "ext-42", *p.TransactionID())
	})

	t.Run("blank transaction id is replaced", func(t *testing.T) {
		p, err := payment.NewCompletedPayment(rentalID, decimal.NewFromInt(70), payment.MethodCash, ptr.Of("  "), now)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(*p.TransactionID(), "TXN-"))
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		_, err := payment.NewCompletedPayment(rentalID, decimal.Zero, payment.MethodPayPal, nil, now)
		assert.NoError(t, err)
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := payment.NewCompletedPayment(rentalID, decimal.NewFromInt(-1), payment.MethodCash, nil, now)
		assert.ErrorIs(t, err, payment.ErrInvalidAmount)
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := payment.NewCompletedPayment(rentalID, decimal.NewFromInt(70), "bitcoin", nil, now)
		assert.ErrorIs(t, err, payment.ErrInvalidMethod)
	})
}

func TestPayment_Refund(t *testing.T) {
	stored := func(status payment.Status) *payment.Payment {
		return payment.Reconstruct(uuid.New(), uuid.New(), decimal.NewFromInt(70),
			payment.MethodCreditCard, status, ptr.Of("TXN-1"), nil, now, now)
	}

	tests := []struct {
		name       string
		status     payment.Status
		reason     string
		wantReason string
		errIs      error
	}{
		{name: "with reason", status: payment.StatusCompleted, reason: " Trip cancelled ", wantReason: "Trip cancelled"},
		{name: "default reason", status: payment.StatusCompleted, reason: "", wantReason: payment.DefaultRefundReason},
		{name: "already refunded", status: payment.StatusRefunded, errIs: payment.ErrAlreadyRefunded},
		{name: "pending", status: payment.StatusPending, errIs: payment.ErrNotCompleted},
		{name: "failed", status: payment.StatusFailed, errIs: payment.ErrNotCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := stored(tt.status)
			got, err := p.Refund(tt.reason)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				assert.Equal(t, tt.status, p.Status())
				assert.Nil(t, p.RefundReason())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantReason, got)
			assert.Equal(t, payment.StatusRefunded, p.Status())
			assert.Equal(t, tt.wantReason, *p.RefundReason())
		})
	}
}

func TestStatus_Open(t *testing.T) {
	assert.True(t, payment.StatusPending.Open())
	assert.True(t, payment.StatusCompleted.Open())
	assert.False(t, payment.StatusFailed.Open())
	assert.False(t, payment.StatusRefunded.Open())
}

func TestNewMethod(t *testing.T) {
	for _, m := range []string{"credit_card", "debit_card", "cash", "bank_transfer", "paypal"} {
		got, err := payment.NewMethod(m)
		require.NoError(t, err)
		assert.Equal(t, m, got.String())
	}
	_, err := payment.NewMethod("cheque")
	assert.ErrorIs(t, err, payment.ErrInvalidMethod)
}
