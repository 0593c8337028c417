package repository

import (
	"context"

	"car-rental/internal/domain/rental"
	"car-rental/internal/infra/query"

	"github.com/google/uuid"
)

// OverlapReader runs the availability query outside a transaction.
type OverlapReader struct {
	queries overlapQueries
	db      query.DBTX
}

func NewOverlapReader(queries *query.Queries, db query.DBTX) *OverlapReader {
	return &OverlapReader{queries: queries, db: db}
}

func (r *OverlapReader) HasOverlap(ctx context.Context, carID uuid.UUID, period rental.DateRange, statuses []rental.Status) (bool, error) {
	return hasOverlap(ctx, r.queries, r.db, carID, period, statuses)
}
