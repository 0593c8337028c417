package discount

import (
	"errors"
	"strings"
	"time"

	"car-rental/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound         = errors.New("discount code not found")
	ErrExpired          = errors.New("discount code is expired or not yet valid")
	ErrUsageExceeded    = errors.New("discount code usage limit reached")
	ErrBelowMinimumDays = errors.New("rental is shorter than the discount minimum")

	ErrEmptyCode      = errors.New("discount code is required")
	ErrInvalidType    = errors.New("invalid discount type")
	ErrInvalidValue   = errors.New("invalid discount value")
	ErrInvalidWindow  = errors.New("valid_until must not be before valid_from")
	ErrInvalidMinDays = errors.New("min_rental_days must be at least 1")
	ErrInvalidLimit   = errors.New("usage_limit must be at least 1")
)

var hundred = decimal.NewFromInt(100)

type Type string

const (
	TypePercentage Type = "percentage"
	TypeFixed      Type = "fixed"
)

func NewType(s string) (Type, error) {
	switch t := Type(s); t {
	case TypePercentage, TypeFixed:
		return t, nil
	case "":
		return TypePercentage, nil
	default:
		return "", ErrInvalidType
	}
}

func (t Type) String() string { return string(t) }

type Code struct {
	id                uuid.UUID
	code              string
	discountType      Type
	value             decimal.Decimal
	minRentalDays     int
	maxDiscountAmount *decimal.Decimal
	validFrom         time.Time
	validUntil        time.Time
	usageLimit        *int
	timesUsed         int
	isActive          bool
}

type Params struct {
	Code              string
	Type              Type
	Value             decimal.Decimal
	MinRentalDays     int
	MaxDiscountAmount *decimal.Decimal
	ValidFrom         time.Time
	ValidUntil        time.Time
	UsageLimit        *int
}

func NewCode(p Params) (*Code, error) {
	code := NormalizeCode(p.Code)
	if code == "" {
		return nil, ErrEmptyCode
	}
	if p.Type != TypePercentage && p.Type != TypeFixed {
		return nil, ErrInvalidType
	}
	if !p.Value.IsPositive() || (p.Type == TypePercentage && p.Value.GreaterThan(hundred)) {
		return nil, ErrInvalidValue
	}
	if p.MaxDiscountAmount != nil && p.MaxDiscountAmount.IsNegative() {
		return nil, ErrInvalidValue
	}
	if p.ValidUntil.Before(p.ValidFrom) {
		return nil, ErrInvalidWindow
	}
	minDays := p.MinRentalDays
	if minDays == 0 {
		minDays = 1
	}
	if minDays < 1 {
		return nil, ErrInvalidMinDays
	}
	if p.UsageLimit != nil && *p.UsageLimit < 1 {
		return nil, ErrInvalidLimit
	}

	return &Code{
		id:                uuid.New(),
		code:              code,
		discountType:      p.Type,
		value:             p.Value,
		minRentalDays:     minDays,
		maxDiscountAmount: p.MaxDiscountAmount,
		validFrom:         p.ValidFrom,
		validUntil:        p.ValidUntil,
		usageLimit:        p.UsageLimit,
		isActive:          true,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	code string,
	discountType Type,
	value decimal.Decimal,
	minRentalDays int,
	maxDiscountAmount *decimal.Decimal,
	validFrom, validUntil time.Time,
	usageLimit *int,
	timesUsed int,
	isActive bool,
) *Code {
	return &Code{
		id:                id,
		code:              code,
		discountType:      discountType,
		value:             value,
		minRentalDays:     minRentalDays,
		maxDiscountAmount: maxDiscountAmount,
		validFrom:         validFrom,
		validUntil:        validUntil,
		usageLimit:        usageLimit,
		timesUsed:         timesUsed,
		isActive:          isActive,
	}
}

// Validate checks the code against today's date and the rental length.
// It never consumes a use; redemption is the caller's job.
func (c *Code) Validate(today time.Time, rentalDays int) error {
	if c == nil || !c.isActive {
		return ErrNotFound
	}
	if today.Before(c.validFrom) || today.After(c.validUntil) {
		return ErrExpired
	}
	if c.usageLimit != nil && c.timesUsed >= *c.usageLimit {
		return ErrUsageExceeded
	}
	if rentalDays < c.minRentalDays {
		return ErrBelowMinimumDays
	}
	return nil
}

// EffectiveAmount is the discount this code grants on total, cap applied.
func (c *Code) EffectiveAmount(total decimal.Decimal) decimal.Decimal {
	var amount decimal.Decimal
	switch c.discountType {
	case TypePercentage:
		amount = total.Mul(c.value).Div(hundred)
	default:
		amount = c.value
	}
	if c.maxDiscountAmount != nil && amount.GreaterThan(*c.maxDiscountAmount) {
		amount = *c.maxDiscountAmount
	}
	return pricing.Round(amount)
}

func NormalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func (c *Code) ID() uuid.UUID                       { return c.id }
func (c *Code) Code() string                        { return c.code }
func (c *Code) Type() Type                          { return c.discountType }
func (c *Code) Value() decimal.Decimal              { return c.value }
func (c *Code) MinRentalDays() int                  { return c.minRentalDays }
func (c *Code) MaxDiscountAmount() *decimal.Decimal { return c.maxDiscountAmount }
func (c *Code) ValidFrom() time.Time                { return c.validFrom }
func (c *Code) ValidUntil() time.Time               { return c.validUntil }
func (c *Code) UsageLimit() *int                    { return c.usageLimit }
func (c *Code) TimesUsed() int                      { return c.timesUsed }
func (c *Code) IsActive() bool                      { return c.isActive }
