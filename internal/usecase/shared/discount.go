package shared

import (
	"context"
	"time"

	"car-rental/internal/domain/discount"
	"car-rental/internal/infra"
	"car-rental/internal/pkg/clock"
)

type DiscountLookup func(ctx context.Context, code string) (*discount.Code, error)

// DiscountValidator resolves a code and checks it for a rental of rentalDays.
// It never consumes a use.
type DiscountValidator struct {
	clock clock.Clock
	loc   *time.Location
}

func NewDiscountValidator(c clock.Clock, loc *time.Location) *DiscountValidator {
	return &DiscountValidator{clock: c, loc: loc}
}

func (v *DiscountValidator) Validate(ctx context.Context, lookup DiscountLookup, code string, rentalDays int) (*discount.Code, error) {
	normalized := discount.NormalizeCode(code)
	if normalized == "" {
		return nil, discount.ErrEmptyCode
	}

	dc, err := lookup(ctx, normalized)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, discount.ErrNotFound
		}
		return nil, err
	}

	if err := dc.Validate(clock.Today(v.clock, v.loc), rentalDays); err != nil {
		return nil, err
	}
	return dc, nil
}
