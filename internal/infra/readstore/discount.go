package readstore

import (
	"context"

	"car-rental/internal/domain/discount"
	"car-rental/internal/infra"
	"car-rental/internal/infra/query"
	"car-rental/internal/infra/repository/converter"
	"car-rental/internal/pkg/pgconv"
)

type DiscountReadQueries interface {
	GetDiscountCodeByCode(ctx context.Context, db query.DBTX, code string) (query.DiscountCode, error)
}

// DiscountReadStore feeds the write side's validator, so it returns the domain type.
type DiscountReadStore struct {
	queries DiscountReadQueries
	db      query.DBTX
}

func NewDiscountReadStore(queries DiscountReadQueries, db query.DBTX) *DiscountReadStore {
	return &DiscountReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *DiscountReadStore) FindByCode(ctx context.Context, code string) (*discount.Code, error) {
	row, err := r.queries.GetDiscountCodeByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("discount code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find discount code", err)
	}

	dc, err := converter.DiscountCodeFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode discount code", err)
	}
	return dc, nil
}
