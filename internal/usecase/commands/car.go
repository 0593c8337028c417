package commands

import (
	"context"

	"car-rental/internal/domain/car"
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
	ErrInvalidCarStatus       = errs.New("invalid car status")
	ErrCarInUse               = errs.New("car is currently rented")
	ErrCarHasCommittedRentals = errs.New("car has confirmed or active rentals")
	ErrCarHasRentalHistory    = errs.New("car has rental history")
	ErrInvalidCarPatch        = errs.New("invalid car update")
	ErrLicensePlateTaken      = errs.New("license plate already registered")
	ErrInvalidCarReference    = errs.New("unknown category or branch")
)

type CarCommands interface {
	UpdateCarStatus(ctx context.Context, actor usecase.Principal, carID uuid.UUID, status string) (*queries.CarView, error)
	UpdateCar(ctx context.Context, actor usecase.Principal, carID uuid.UUID, p car.Patch) (*queries.CarView, error)
	DeleteCar(ctx context.Context, actor usecase.Principal, carID uuid.UUID) error
}

type carUseCaseImpl struct {
	uow         shared.UnitOfWork
	permissions usecase.PermissionChecker
	cars        queries.CarQueries
	clock       clock.Clock
}

func NewCarUseCase(
	uow shared.UnitOfWork,
	permissions usecase.PermissionChecker,
	cars queries.CarQueries,
	clk clock.Clock,
) CarCommands {
	return &carUseCaseImpl{
		uow:         uow,
		permissions: permissions,
		cars:        cars,
		clock:       clk,
	}
}

func (uc *carUseCaseImpl) UpdateCarStatus(ctx context.Context, actor usecase.Principal, carID uuid.UUID, status string) (*queries.CarView, error) {
	if !uc.permissions.Can(actor, usecase.ManageFleet) {
		return nil, errs.ErrForbidden
	}
	to, err := car.NewStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCarStatus)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, derr := lockCar(ctx, tx, carID)
		if derr != nil {
			return derr
		}

		committed, derr := tx.Rentals().CountForCar(ctx, carID, rental.CommittedStatuses())
		if derr != nil {
			return derr
		}

		if derr = c.ChangeStatus(to, committed > 0, uc.clock.Now()); derr != nil {
			switch {
			case errs.Is(derr, car.ErrCarInUse):
				return errs.Mark(derr, ErrCarInUse)
			case errs.Is(derr, car.ErrHasCommittedRentals):
				return errs.Mark(derr, ErrCarHasCommittedRentals)
			default:
				return errs.Mark(derr, ErrInvalidCarStatus)
			}
		}
		return tx.Cars().Save(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	return uc.cars.GetCar(ctx, carID)
}

func (uc *carUseCaseImpl) UpdateCar(ctx context.Context, actor usecase.Principal, carID uuid.UUID, p car.Patch) (*queries.CarView, error) {
	if !uc.permissions.Can(actor, usecase.ManageFleet) {
		return nil, errs.ErrForbidden
	}
	if p.IsEmpty() {
		return nil, errs.Mark(car.ErrEmptyPatch, ErrInvalidCarPatch)
	}
	if err := p.Validate(); err != nil {
		return nil, errs.Mark(err, ErrInvalidCarPatch)
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, derr := lockCar(ctx, tx, carID)
		if derr != nil {
			return derr
		}
		if derr = c.Apply(p, uc.clock.Now()); derr != nil {
			return errs.Mark(derr, ErrInvalidCarPatch)
		}

		derr = tx.Cars().Save(ctx, c)
		switch {
		case derr == nil:
			return nil
		case infra.IsKind(derr, infra.KindDuplicateKey):
			return errs.Mark(derr, ErrLicensePlateTaken)
		case infra.IsKind(derr, infra.KindForeignKeyViolated):
			return errs.Mark(derr, ErrInvalidCarReference)
		default:
			return derr
		}
	})
	if err != nil {
		return nil, err
	}

	return uc.cars.GetCar(ctx, carID)
}

// DeleteCar drops the car together with its pending bookings. Completed or
// cancelled rentals keep the car referenced and block the delete.
func (uc *carUseCaseImpl) DeleteCar(ctx context.Context, actor usecase.Principal, carID uuid.UUID) error {
	if !uc.permissions.Can(actor, usecase.ManageFleet) {
		return errs.ErrForbidden
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := lockCar(ctx, tx, carID); derr != nil {
			return derr
		}

		committed, derr := tx.Rentals().CountForCar(ctx, carID, rental.CommittedStatuses())
		if derr != nil {
			return derr
		}
		if committed > 0 {
			return ErrCarHasCommittedRentals
		}

		if _, derr = tx.Rentals().DeleteForCar(ctx, carID, []rental.Status{rental.StatusPending}); derr != nil {
			return derr
		}

		derr = tx.Cars().Delete(ctx, carID)
		switch {
		case derr == nil:
			return nil
		case infra.IsKind(derr, infra.KindNotFound):
			return ErrCarNotFound
		case infra.IsKind(derr, infra.KindForeignKeyViolated):
			return errs.Mark(derr, ErrCarHasRentalHistory)
		default:
			return derr
		}
	})
}

func lockCar(ctx context.Context, tx shared.Tx, carID uuid.UUID) (*car.Car, error) {
	c, _, err := tx.Cars().FindForUpdate(ctx, carID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}
	return c, nil
}
