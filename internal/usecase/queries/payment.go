package queries

import (
	"context"
	"time"

	"car-rental/internal/infra"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase"

	"github.com/google/uuid"
)

var ErrPaymentNotFound = errs.New("payment not found")

type PaymentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentView, error)
	FindLatestByRental(ctx context.Context, rentalID uuid.UUID) (*PaymentView, error)
	ListByCustomerFirstPage(ctx context.Context, customerID uuid.UUID, limit int32) ([]*PaymentView, error)
	ListByCustomerKeyset(ctx context.Context, customerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*PaymentView, error)
}

type PaymentQueries interface {
	GetPayment(ctx context.Context, actor usecase.Principal, id uuid.UUID) (*PaymentView, error)
	GetPaymentSystem(ctx context.Context, id uuid.UUID) (*PaymentView, error)
	GetPaymentByRental(ctx context.Context, actor usecase.Principal, rentalID uuid.UUID) (*PaymentView, error)
	ListPaymentHistory(ctx context.Context, actor usecase.Principal, cursor *Cursor, limit int) ([]*PaymentView, *Cursor, error)
}

type paymentQueriesImpl struct {
	store       PaymentReadStore
	permissions usecase.PermissionChecker
}

func NewPaymentQueries(store PaymentReadStore, permissions usecase.PermissionChecker) PaymentQueries {
	return &paymentQueriesImpl{
		store:       store,
		permissions: permissions,
	}
}

func (q *paymentQueriesImpl) GetPayment(ctx context.Context, actor usecase.Principal, id uuid.UUID) (*PaymentView, error) {
	view, err := q.GetPaymentSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	return q.visible(actor, view)
}

func (q *paymentQueriesImpl) GetPaymentSystem(ctx context.Context, id uuid.UUID) (*PaymentView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *paymentQueriesImpl) GetPaymentByRental(ctx context.Context, actor usecase.Principal, rentalID uuid.UUID) (*PaymentView, error) {
	view, err := q.store.FindLatestByRental(ctx, rentalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return q.visible(actor, view)
}

func (q *paymentQueriesImpl) ListPaymentHistory(ctx context.Context, actor usecase.Principal, cursor *Cursor, limit int) ([]*PaymentView, *Cursor, error) {
	limit = ValidateLimit(limit)
	pos, err := cursor.position()
	if err != nil {
		return nil, nil, err
	}

	var rows []*PaymentView
	if pos == nil {
		rows, err = q.store.ListByCustomerFirstPage(ctx, actor.ID, int32(limit+1))
	} else {
		rows, err = q.store.ListByCustomerKeyset(ctx, actor.ID, pos.CreatedAt, pos.ID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	page, next := pageOf(rows, limit, func(v *PaymentView) (time.Time, uuid.UUID) {
		return v.CreatedAt, v.ID
	})
	return page, next, nil
}

func (q *paymentQueriesImpl) visible(actor usecase.Principal, view *PaymentView) (*PaymentView, error) {
	if view.CustomerID != actor.ID && !q.permissions.Can(actor, usecase.ManageFleet) {
		return nil, ErrPaymentNotFound
	}
	return view, nil
}
