package commands

import (
	"context"
	"strings"
	"time"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/discount"
	"car-rental/internal/domain/pricing"
	"car-rental/internal/domain/rental"
	"car-rental/internal/infra"
	"car-rental/internal/pkg/clock"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase"
	"car-rental/internal/usecase/queries"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidDates       = errs.New("invalid rental dates")
	ErrCarNotFound        = errs.New("car not found")
	ErrCarUnavailable     = errs.New("car is not available for the selected dates")
	ErrInvalidDiscount    = errs.New("invalid discount code")
	ErrRentalNotFound     = errs.New("rental not found")
	ErrInvalidRentalState = errs.New("rental is not in a valid state for this operation")
	ErrInvalidMileage     = errs.New("invalid mileage")
	ErrInvalidTransition  = errs.New("invalid status transition")
	ErrInvalidStatus      = errs.New("invalid status")
)

type CreateRentalRequest struct {
	CarID        uuid.UUID
	StartDate    time.Time
	EndDate      time.Time
	DiscountCode *string
}

type RentalCommands interface {
	CreateRental(ctx context.Context, req CreateRentalRequest, customerID uuid.UUID) (*queries.RentalView, error)
	UpdateStatus(ctx context.Context, actor usecase.Principal, rentalID uuid.UUID, status string) (*queries.RentalView, error)
	ReturnCar(ctx context.Context, actor usecase.Principal, rentalID uuid.UUID, endMileage int) (*queries.RentalView, error)
}

type rentalUseCaseImpl struct {
	uow          shared.UnitOfWork
	availability *shared.AvailabilityChecker
	discounts    *shared.DiscountValidator
	permissions  usecase.PermissionChecker
	rentals      queries.RentalQueries
	clock        clock.Clock
	loc          *time.Location
}

func NewRentalUseCase(
	uow shared.UnitOfWork,
	availability *shared.AvailabilityChecker,
	discounts *shared.DiscountValidator,
	permissions usecase.PermissionChecker,
	rentals queries.RentalQueries,
	clk clock.Clock,
	loc *time.Location,
) RentalCommands {
	return &rentalUseCaseImpl{
		uow:          uow,
		availability: availability,
		discounts:    discounts,
		permissions:  permissions,
		rentals:      rentals,
		clock:        clk,
		loc:          loc,
	}
}

func (uc *rentalUseCaseImpl) CreateRental(ctx context.Context, req CreateRentalRequest, customerID uuid.UUID) (*queries.RentalView, error) {
	services := &rental.Services{Clock: uc.clock, Location: uc.loc}

	period, err := rental.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDates)
	}
	if period.StartsBefore(services.Today()) {
		return nil, errs.Mark(rental.ErrStartDateInPast, ErrInvalidDates)
	}
	days, err := pricing.Days(period.Start(), period.End())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDates)
	}

	var rentalID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, rate, derr := tx.Cars().FindForUpdate(ctx, req.CarID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrCarNotFound
			}
			return derr
		}

		var code *discount.Code
		if req.DiscountCode != nil && strings.TrimSpace(*req.DiscountCode) != "" {
			code, derr = uc.discounts.Validate(ctx, tx.Discounts().FindByCodeForUpdate, *req.DiscountCode, days)
			if derr != nil {
				return markDiscountErr(derr)
			}
		}

		if derr = c.EnsureRentable(); derr != nil {
			return errs.Mark(derr, ErrCarUnavailable)
		}
		free, derr := uc.availability.IsAvailable(ctx, tx.Rentals(), c.ID(), period)
		if derr != nil {
			return derr
		}
		if !free {
			return ErrCarUnavailable
		}

		target := rental.CarSpec{ID: c.ID(), BranchID: c.BranchID(), DailyRate: rate}
		rent, derr := rental.NewRental(services, target, customerID, period, code)
		if derr != nil {
			return markRentalErr(derr)
		}

		id, derr := tx.Rentals().Create(ctx, rent)
		if derr != nil {
			if infra.IsKind(derr, infra.KindExclusionViolated) {
				return errs.Mark(derr, ErrCarUnavailable)
			}
			return derr
		}

		if code != nil {
			ok, derr := tx.Discounts().IncrementUsage(ctx, code.ID())
			if derr != nil {
				return derr
			}
			if !ok {
				return errs.Mark(discount.ErrUsageExceeded, ErrInvalidDiscount)
			}
		}

		rentalID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write with the joined display data
	return uc.rentals.GetRentalSystem(ctx, rentalID)
}

func (uc *rentalUseCaseImpl) UpdateStatus(ctx context.Context, actor usecase.Principal, rentalID uuid.UUID, status string) (*queries.RentalView, error) {
	if !uc.permissions.Can(actor, usecase.ManageFleet) {
		return nil, errs.ErrForbidden
	}
	to, err := rental.NewStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStatus)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, rent, derr := lockCarAndRental(ctx, tx, rentalID)
		if derr != nil {
			return derr
		}

		now := uc.clock.Now()
		switch to {
		case rental.StatusActive:
			if derr = rent.Activate(c.Mileage(), now); derr != nil {
				return markRentalErr(derr)
			}
			c.HandOver(now)
		case rental.StatusCompleted:
			if !rent.Status().CanTransitionTo(to) {
				return markRentalErr(&rental.TransitionError{From: rent.Status(), To: to})
			}
			// Without a return reading the odometer is taken as unchanged.
			if derr = rent.Complete(c.Mileage(), now); derr != nil {
				return markRentalErr(derr)
			}
			if derr = c.Release(c.Mileage(), now); derr != nil {
				return errs.Mark(derr, ErrInvalidMileage)
			}
		default:
			if derr = rent.TransitionTo(to, now); derr != nil {
				return markRentalErr(derr)
			}
			return saveRental(ctx, tx, rent)
		}

		if derr = saveRental(ctx, tx, rent); derr != nil {
			return derr
		}
		return tx.Cars().Save(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	return uc.rentals.GetRentalSystem(ctx, rentalID)
}

func (uc *rentalUseCaseImpl) ReturnCar(ctx context.Context, actor usecase.Principal, rentalID uuid.UUID, endMileage int) (*queries.RentalView, error) {
	if !uc.permissions.Can(actor, usecase.ManageFleet) {
		return nil, errs.ErrForbidden
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, rent, derr := lockCarAndRental(ctx, tx, rentalID)
		if derr != nil {
			return derr
		}

		now := uc.clock.Now()
		if derr = rent.Complete(endMileage, now); derr != nil {
			return markRentalErr(derr)
		}
		if derr = c.Release(endMileage, now); derr != nil {
			return errs.Mark(derr, ErrInvalidMileage)
		}

		if derr = saveRental(ctx, tx, rent); derr != nil {
			return derr
		}
		return tx.Cars().Save(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	return uc.rentals.GetRentalSystem(ctx, rentalID)
}

// lockCarAndRental locks the rental's car before the rental itself so every
// writer acquires row locks in the same order.
func lockCarAndRental(ctx context.Context, tx shared.Tx, rentalID uuid.UUID) (*car.Car, *rental.Rental, error) {
	carID, err := tx.Rentals().CarIDOf(ctx, rentalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrRentalNotFound
		}
		return nil, nil, err
	}

	c, _, err := tx.Cars().FindForUpdate(ctx, carID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrCarNotFound
		}
		return nil, nil, err
	}

	rent, err := tx.Rentals().FindForUpdate(ctx, rentalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrRentalNotFound
		}
		return nil, nil, err
	}
	return c, rent, nil
}

func saveRental(ctx context.Context, tx shared.Tx, rent *rental.Rental) error {
	err := tx.Rentals().Save(ctx, rent)
	if err == nil {
		return nil
	}
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return ErrRentalNotFound
	case infra.IsKind(err, infra.KindExclusionViolated):
		return errs.Mark(err, ErrCarUnavailable)
	default:
		return err
	}
}

func markRentalErr(err error) error {
	switch {
	case errs.Is(err, rental.ErrInvalidTransition):
		return errs.Mark(err, ErrInvalidTransition)
	case errs.Is(err, rental.ErrInvalidState):
		return errs.Mark(err, ErrInvalidRentalState)
	case errs.Is(err, rental.ErrInvalidMileage):
		return errs.Mark(err, ErrInvalidMileage)
	case errs.Is(err, rental.ErrInvalidStatus):
		return errs.Mark(err, ErrInvalidStatus)
	case errs.Is(err, rental.ErrStartDateInPast), errs.Is(err, pricing.ErrInvalidRange):
		return errs.Mark(err, ErrInvalidDates)
	case isDiscountErr(err):
		return errs.Mark(err, ErrInvalidDiscount)
	default:
		return err
	}
}

func markDiscountErr(err error) error {
	if isDiscountErr(err) {
		return errs.Mark(err, ErrInvalidDiscount)
	}
	return err
}

func isDiscountErr(err error) bool {
	for _, target := range []error{
		discount.ErrNotFound,
		discount.ErrExpired,
		discount.ErrUsageExceeded,
		discount.ErrBelowMinimumDays,
		discount.ErrEmptyCode,
	} {
		if errs.Is(err, target) {
			return true
		}
	}
	return false
}
