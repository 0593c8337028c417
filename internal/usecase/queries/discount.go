package queries

import (
	"context"

	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/shared"
)

var ErrInvalidRentalDays = errs.New("rental_days must be at least 1")

type DiscountQueries interface {
	ValidateDiscount(ctx context.Context, code string, rentalDays int) (*DiscountView, error)
}

type discountQueriesImpl struct {
	uow       shared.UnitOfWork
	validator *shared.DiscountValidator
}

func NewDiscountQueries(uow shared.UnitOfWork, validator *shared.DiscountValidator) DiscountQueries {
	return &discountQueriesImpl{
		uow:       uow,
		validator: validator,
	}
}

func (q *discountQueriesImpl) ValidateDiscount(ctx context.Context, code string, rentalDays int) (*DiscountView, error) {
	if rentalDays < 1 {
		return nil, ErrInvalidRentalDays
	}

	dc, err := q.validator.Validate(ctx, q.uow.CommandReads().DiscountByCode, code, rentalDays)
	if err != nil {
		return nil, err
	}

	return &DiscountView{
		Code:              dc.Code(),
		DiscountType:      dc.Type().String(),
		DiscountValue:     dc.Value(),
		MinRentalDays:     dc.MinRentalDays(),
		MaxDiscountAmount: dc.MaxDiscountAmount(),
		ValidUntil:        dc.ValidUntil(),
		RentalDays:        rentalDays,
	}, nil
}
