package repository

import (
	"context"

	"car-rental/internal/domain/discount"
	"car-rental/internal/infra"
	"car-rental/internal/infra/query"
	"car-rental/internal/infra/repository/converter"
	"car-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DiscountWriteQueries interface {
	GetDiscountCodeByCodeForUpdate(ctx context.Context, db query.DBTX, code string) (query.DiscountCode, error)
	IncrementDiscountUsage(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
}

type DiscountRepository struct {
	queries DiscountWriteQueries
	db      query.DBTX
}

func NewDiscountRepository(queries DiscountWriteQueries, db query.DBTX) *DiscountRepository {
	return &DiscountRepository{
		queries: queries,
		db:      db,
	}
}

func (r *DiscountRepository) FindByCodeForUpdate(ctx context.Context, code string) (*discount.Code, error) {
	row, err := r.queries.GetDiscountCodeByCodeForUpdate(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("discount code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock discount code", err)
	}

	dc, err := converter.DiscountCodeFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode discount code", err)
	}
	return dc, nil
}

func (r *DiscountRepository) IncrementUsage(ctx context.Context, id uuid.UUID) (bool, error) {
	affected, err := r.queries.IncrementDiscountUsage(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment discount usage", err)
	}
	return affected == 1, nil
}
