package queries

import (
	"context"
	"time"

	"car-rental/internal/domain/rental"
	"car-rental/internal/infra"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase"

	"github.com/google/uuid"
)

var (
	ErrRentalNotFound      = errs.New("rental not found")
	ErrInvalidStatusFilter = errs.New("invalid status filter")
)

type RentalFilter struct {
	CustomerID *uuid.UUID
	Status     *string
}

type RentalReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RentalView, error)
	ListFirstPage(ctx context.Context, filter RentalFilter, limit int32) ([]*RentalView, error)
	ListKeyset(ctx context.Context, filter RentalFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*RentalView, error)
}

type RentalQueries interface {
	GetRental(ctx context.Context, actor usecase.Principal, id uuid.UUID) (*RentalView, error)
	// GetRentalSystem skips the access check; used for read-after-write.
	GetRentalSystem(ctx context.Context, id uuid.UUID) (*RentalView, error)
	ListMyRentals(ctx context.Context, actor usecase.Principal, status *string, cursor *Cursor, limit int) ([]*RentalView, *Cursor, error)
	ListFleetRentals(ctx context.Context, actor usecase.Principal, status *string, cursor *Cursor, limit int) ([]*RentalView, *Cursor, error)
}

type rentalQueriesImpl struct {
	store       RentalReadStore
	permissions usecase.PermissionChecker
}

func NewRentalQueries(store RentalReadStore, permissions usecase.PermissionChecker) RentalQueries {
	return &rentalQueriesImpl{
		store:       store,
		permissions: permissions,
	}
}

func (q *rentalQueriesImpl) GetRental(ctx context.Context, actor usecase.Principal, id uuid.UUID) (*RentalView, error) {
	view, err := q.GetRentalSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	// Hide other customers' rentals as absent.
	if view.CustomerID != actor.ID && !q.permissions.Can(actor, usecase.ManageFleet) {
		return nil, ErrRentalNotFound
	}
	return view, nil
}

func (q *rentalQueriesImpl) GetRentalSystem(ctx context.Context, id uuid.UUID) (*RentalView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRentalNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *rentalQueriesImpl) ListMyRentals(ctx context.Context, actor usecase.Principal, status *string, cursor *Cursor, limit int) ([]*RentalView, *Cursor, error) {
	customerID := actor.ID
	return q.list(ctx, RentalFilter{CustomerID: &customerID, Status: status}, cursor, limit)
}

func (q *rentalQueriesImpl) ListFleetRentals(ctx context.Context, actor usecase.Principal, status *string, cursor *Cursor, limit int) ([]*RentalView, *Cursor, error) {
	if !q.permissions.Can(actor, usecase.ManageFleet) {
		return nil, nil, errs.ErrForbidden
	}
	return q.list(ctx, RentalFilter{Status: status}, cursor, limit)
}

func (q *rentalQueriesImpl) list(ctx context.Context, filter RentalFilter, cursor *Cursor, limit int) ([]*RentalView, *Cursor, error) {
	if filter.Status != nil {
		if _, err := rental.NewStatus(*filter.Status); err != nil {
			return nil, nil, ErrInvalidStatusFilter
		}
	}

	limit = ValidateLimit(limit)
	pos, err := cursor.position()
	if err != nil {
		return nil, nil, err
	}

	var rows []*RentalView
	if pos == nil {
		rows, err = q.store.ListFirstPage(ctx, filter, int32(limit+1))
	} else {
		rows, err = q.store.ListKeyset(ctx, filter, pos.CreatedAt, pos.ID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	page, next := pageOf(rows, limit, func(v *RentalView) (time.Time, uuid.UUID) {
		return v.CreatedAt, v.ID
	})
	return page, next, nil
}
