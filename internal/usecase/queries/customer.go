package queries

import (
	"context"

	"car-rental/internal/infra"
	"car-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound = errs.New("customer not found")
	ErrCustomerInactive = errs.New("customer inactive")
)

type CustomerQueries interface {
	GetCurrentCustomer(ctx context.Context, customerID uuid.UUID) (*AuthorizedCustomerView, error)
}

type CustomerReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedCustomerView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedCustomerView, string, error)
}

type customerQueriesImpl struct {
	readStore CustomerReadStore
}

func NewCustomerQueries(readStore CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{
		readStore: readStore,
	}
}

func (q *customerQueriesImpl) GetCurrentCustomer(ctx context.Context, customerID uuid.UUID) (*AuthorizedCustomerView, error) {
	c, err := q.readStore.FindByID(ctx, customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	if !c.IsActive {
		return nil, ErrCustomerInactive
	}

	return c, nil
}
