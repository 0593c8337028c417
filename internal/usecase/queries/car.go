package queries

import (
	"context"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/rental"
	"car-rental/internal/infra"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrCarNotFound = errs.New("car not found")

type CarReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CarView, error)
}

type CarQueries interface {
	GetCar(ctx context.Context, id uuid.UUID) (*CarView, error)
	CheckAvailability(ctx context.Context, carID uuid.UUID, period rental.DateRange) (*AvailabilityView, error)
}

type carQueriesImpl struct {
	store   CarReadStore
	uow     shared.UnitOfWork
	checker *shared.AvailabilityChecker
}

func NewCarQueries(store CarReadStore, uow shared.UnitOfWork, checker *shared.AvailabilityChecker) CarQueries {
	return &carQueriesImpl{
		store:   store,
		uow:     uow,
		checker: checker,
	}
}

func (q *carQueriesImpl) GetCar(ctx context.Context, id uuid.UUID) (*CarView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}
	return view, nil
}

// CheckAvailability is advisory: nothing is locked, so a booking made right
// after can still fail.
func (q *carQueriesImpl) CheckAvailability(ctx context.Context, carID uuid.UUID, period rental.DateRange) (*AvailabilityView, error) {
	view, err := q.GetCar(ctx, carID)
	if err != nil {
		return nil, err
	}

	free, err := q.checker.IsAvailable(ctx, q.uow.CommandReads(), carID, period)
	if err != nil {
		return nil, err
	}

	return &AvailabilityView{
		CarID:     carID,
		StartDate: period.Start(),
		EndDate:   period.End(),
		CarStatus: view.Status,
		Available: free && view.Status == car.StatusAvailable.String(),
	}, nil
}
