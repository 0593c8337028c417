package repository

import (
	"context"

	"car-rental/internal/infra"
	"car-rental/internal/infra/query"

	"github.com/google/uuid"
)

type CustomerWriteQueries interface {
	UpdateCustomerLastLogin(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
}

type CustomerRepository struct {
	queries CustomerWriteQueries
	db      query.DBTX
}

func NewCustomerRepository(queries CustomerWriteQueries, db query.DBTX) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerRepository) UpdateLastLogin(ctx context.Context, customerID uuid.UUID) error {
	affected, err := r.queries.UpdateCustomerLastLogin(ctx, r.db, customerID)
	if err != nil {
		return infra.WrapRepoErr("failed to update customer last login", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}
