package readstore

import (
	"context"

	"car-rental/internal/infra"
	"car-rental/internal/infra/query"
	"car-rental/internal/pkg/pgconv"
	"car-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarViewQueries interface {
	GetCarDetail(ctx context.Context, db query.DBTX, id uuid.UUID) (query.CarDetailRow, error)
}

type CarReadStore struct {
	queries CarViewQueries
	db      query.DBTX
}

func NewCarReadStore(queries CarViewQueries, db query.DBTX) *CarReadStore {
	return &CarReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CarReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CarView, error) {
	row, err := r.queries.GetCarDetail(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car by ID", err)
	}

	rate, err := pgconv.DecimalFromNumeric(row.DailyRate)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode car daily rate", err)
	}

	return &queries.CarView{
		ID:           row.ID,
		CategoryID:   row.CategoryID,
		CategoryName: row.CategoryName,
		DailyRate:    rate,
		BranchID:     row.BranchID,
		BranchName:   row.BranchName,
		Brand:        row.Brand,
		Model:        row.Model,
		Year:         int(row.Year),
		Color:        pgconv.StringPtrFromPgtype(row.Color),
		LicensePlate: row.LicensePlate,
		ImageURL:     pgconv.StringPtrFromPgtype(row.ImageUrl),
		Status:       row.Status,
		Mileage:      int(row.Mileage),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
