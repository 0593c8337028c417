//go:build unit

package discount_test

import (
	"testing"
	"time"

	"car-rental/internal/domain/discount"
	"car-rental/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)

func TestCode_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*builder.DiscountBuilder)
		today  time.Time
		days   int
		errIs  error
	}{
		{
			name:  "valid code",
			today: today,
			days:  2,
		},
		{
			name:   "inactive code reads as not found",
			mutate: func(b *builder.DiscountBuilder) { b.Inactive() },
			today:  today,
			days:   2,
			errIs:  discount.ErrNotFound,
		},
		{
			name:  "before window",
			today: time.Date(2029, 12, 31, 0, 0, 0, 0, time.UTC),
			days:  2,
			errIs: discount.ErrExpired,
		},
		{
			name:  "after window",
			today: time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC),
			days:  2,
			errIs: discount.ErrExpired,
		},
		{
			name:  "last day of window is valid",
			today: time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC),
			days:  2,
		},
		{
			name:   "usage limit reached",
			mutate: func(b *builder.DiscountBuilder) { b.WithUsage(5, 5) },
			today:  today,
			days:   2,
			errIs:  discount.ErrUsageExceeded,
		},
		{
			name:   "usage below limit",
			mutate: func(b *builder.DiscountBuilder) { b.WithUsage(5, 4) },
			today:  today,
			days:   2,
		},
		{
			name:   "rental shorter than minimum",
			mutate: func(b *builder.DiscountBuilder) { b.WithMinRentalDays(3) },
			today:  today,
			days:   2,
			errIs:  discount.ErrBelowMinimumDays,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewDiscountBuilder()
			if tt.mutate != nil {
				tt.mutate(b)
			}
			err := b.BuildDomain().Validate(tt.today, tt.days)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("nil code reads as not found", func(t *testing.T) {
		var code *discount.Code
		assert.ErrorIs(t, code.Validate(today, 1), discount.ErrNotFound)
	})
}

func TestCode_EffectiveAmount(t *testing.T) {
	total := decimal.NewFromInt(90)

	tests := []struct {
		name string
		code *discount.Code
		want string
	}{
		{
			name: "percentage",
			code: builder.NewDiscountBuilder().BuildDomain(),
			want: "9",
		},
		{
			name: "percentage capped",
			code: builder.NewDiscountBuilder().WithPercentage(decimal.NewFromInt(50)).WithMaxDiscount(decimal.NewFromInt(20)).BuildDomain(),
			want: "20",
		},
		{
			name: "fixed",
			code: builder.NewDiscountBuilder().WithFixed(decimal.NewFromInt(10)).BuildDomain(),
			want: "10",
		},
		{
			name: "fixed capped",
			code: builder.NewDiscountBuilder().WithFixed(decimal.NewFromInt(30)).WithMaxDiscount(decimal.NewFromInt(25)).BuildDomain(),
			want: "25",
		},
		{
			name: "percentage rounds to cents",
			code: builder.NewDiscountBuilder().WithPercentage(decimal.RequireFromString("12.5")).BuildDomain(),
			want: "11.25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.code.EffectiveAmount(total)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestNewCode(t *testing.T) {
	valid := func() discount.Params {
		return discount.Params{
			Code:       " spring5 ",
			Type:       discount.TypeFixed,
			Value:      decimal.NewFromInt(5),
			ValidFrom:  today,
			ValidUntil: today.AddDate(0, 1, 0),
		}
	}

	t.Run("normalizes and defaults", func(t *testing.T) {
		code, err := discount.NewCode(valid())
		require.NoError(t, err)
		assert.Equal(t, "SPRING5", code.Code())
		assert.Equal(t, 1, code.MinRentalDays())
		assert.True(t, code.IsActive())
		assert.Zero(t, code.TimesUsed())
	})

	tests := []struct {
		name   string
		mutate func(*discount.Params)
		errIs  error
	}{
		{name: "blank code", mutate: func(p *discount.Params) { p.Code = "  " }, errIs: discount.ErrEmptyCode},
		{name: "unknown type", mutate: func(p *discount.Params) { p.Type = "bogus" }, errIs: discount.ErrInvalidType},
		{name: "zero value", mutate: func(p *discount.Params) { p.Value = decimal.Zero }, errIs: discount.ErrInvalidValue},
		{
			name: "percentage above hundred",
			mutate: func(p *discount.Params) {
				p.Type = discount.TypePercentage
				p.Value = decimal.NewFromInt(101)
			},
			errIs: discount.ErrInvalidValue,
		},
		{name: "inverted window", mutate: func(p *discount.Params) { p.ValidUntil = today.AddDate(0, 0, -1) }, errIs: discount.ErrInvalidWindow},
		{name: "negative minimum", mutate: func(p *discount.Params) { p.MinRentalDays = -1 }, errIs: discount.ErrInvalidMinDays},
		{
			name: "zero usage limit",
			mutate: func(p *discount.Params) {
				zero := 0
				p.UsageLimit = &zero
			},
			errIs: discount.ErrInvalidLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(&p)
			_, err := discount.NewCode(p)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestNewType(t *testing.T) {
	typ, err := discount.NewType("")
	require.NoError(t, err)
	assert.Equal(t, discount.TypePercentage, typ)

	_, err = discount.NewType("bogus")
	assert.ErrorIs(t, err, discount.ErrInvalidType)
}
