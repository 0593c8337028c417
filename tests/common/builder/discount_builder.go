//go:build unit || e2e

package builder

import (
	"time"

	"car-rental/internal/domain/discount"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DiscountBuilder struct {
	Code          string
	Type          discount.Type
	Value         decimal.Decimal
	MinRentalDays int
	MaxDiscount   *decimal.Decimal
	ValidFrom     time.Time
	ValidUntil    time.Time
	UsageLimit    *int
	TimesUsed     int
	IsActive      bool
}

func NewDiscountBuilder() *DiscountBuilder {
	return &DiscountBuilder{
		Code:          "SUMMER10",
		Type:          discount.TypePercentage,
		Value:         decimal.NewFromInt(10),
		MinRentalDays: 1,
		ValidFrom:     time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil:    time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC),
		IsActive:      true,
	}
}

func (b *DiscountBuilder) WithCode(code string) *DiscountBuilder {
	b.Code = code
	return b
}

func (b *DiscountBuilder) WithFixed(amount decimal.Decimal) *DiscountBuilder {
	b.Type = discount.TypeFixed
	b.Value = amount
	return b
}

func (b *DiscountBuilder) WithPercentage(pct decimal.Decimal) *DiscountBuilder {
	b.Type = discount.TypePercentage
	b.Value = pct
	return b
}

func (b *DiscountBuilder) WithMaxDiscount(amount decimal.Decimal) *DiscountBuilder {
	b.MaxDiscount = &amount
	return b
}

func (b *DiscountBuilder) WithMinRentalDays(days int) *DiscountBuilder {
	b.MinRentalDays = days
	return b
}

func (b *DiscountBuilder) WithWindow(from, until time.Time) *DiscountBuilder {
	b.ValidFrom = from
	b.ValidUntil = until
	return b
}

func (b *DiscountBuilder) WithUsage(limit, used int) *DiscountBuilder {
	b.UsageLimit = &limit
	b.TimesUsed = used
	return b
}

func (b *DiscountBuilder) Inactive() *DiscountBuilder {
	b.IsActive = false
	return b
}

func (b *DiscountBuilder) BuildDomain() *discount.Code {
	return discount.Reconstruct(
		uuid.New(),
		discount.NormalizeCode(b.Code),
		b.Type,
		b.Value,
		b.MinRentalDays,
		b.MaxDiscount,
		b.ValidFrom,
		b.ValidUntil,
		b.UsageLimit,
		b.TimesUsed,
		b.IsActive,
	)
}
