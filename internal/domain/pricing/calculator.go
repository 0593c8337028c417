package pricing

import (
	"errors"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRange   = errors.New("end date must be after start date")
	ErrInvalidRate    = errors.New("daily rate must be greater than zero")
	ErrInvalidPercent = errors.New("discount percent must be between 0 and 100")
)

const moneyPlaces = 2

var hundred = decimal.NewFromInt(100)

type Breakdown struct {
	Days           int
	DailyRate      decimal.Decimal
	TotalAmount    decimal.Decimal
	DiscountAmount decimal.Decimal
	FinalAmount    decimal.Decimal
}

// Calculate prices a rental of [start, end) at dailyRate with an optional percentage discount.
func Calculate(dailyRate decimal.Decimal, start, end time.Time, discountPercent decimal.Decimal) (Breakdown, error) {
	if !dailyRate.IsPositive() {
		return Breakdown{}, ErrInvalidRate
	}
	if discountPercent.IsNegative() || discountPercent.GreaterThan(hundred) {
		return Breakdown{}, ErrInvalidPercent
	}
	days, err := Days(start, end)
	if err != nil {
		return Breakdown{}, err
	}

	total := Round(dailyRate.Mul(decimal.NewFromInt(int64(days))))
	discount := Round(total.Mul(discountPercent).Div(hundred))

	return Breakdown{
		Days:           days,
		DailyRate:      Round(dailyRate),
		TotalAmount:    total,
		DiscountAmount: discount,
		FinalAmount:    Round(total.Sub(discount)),
	}, nil
}

// Days counts started days between start and end; partial days round up.
func Days(start, end time.Time) (int, error) {
	if !end.After(start) {
		return 0, ErrInvalidRange
	}
	return int(math.Ceil(end.Sub(start).Hours() / 24)), nil
}

// WithDiscount replaces the discount by an externally computed amount, clamped to [0, total].
func (b Breakdown) WithDiscount(amount decimal.Decimal) Breakdown {
	amount = Round(amount)
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	if amount.GreaterThan(b.TotalAmount) {
		amount = b.TotalAmount
	}
	b.DiscountAmount = amount
	b.FinalAmount = Round(b.TotalAmount.Sub(amount))
	return b
}

// Round rounds half-up (away from zero) to cents.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}
