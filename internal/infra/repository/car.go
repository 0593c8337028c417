package repository

import (
	"context"

	"car-rental/internal/domain/car"
	"car-rental/internal/infra"
	"car-rental/internal/infra/query"
	"car-rental/internal/infra/repository/converter"
	"car-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CarWriteQueries interface {
	GetCarForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.CarWithRate, error)
	UpdateCar(ctx context.Context, db query.DBTX, arg query.UpdateCarParams) (int64, error)
	DeleteCar(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
}

type CarRepository struct {
	queries CarWriteQueries
	db      query.DBTX
}

func NewCarRepository(queries CarWriteQueries, db query.DBTX) *CarRepository {
	return &CarRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CarRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*car.Car, decimal.Decimal, error) {
	row, err := r.queries.GetCarForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, decimal.Zero, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, decimal.Zero, infra.WrapRepoErr("failed to lock car", err)
	}

	c, err := converter.CarFromRow(row.Car)
	if err != nil {
		return nil, decimal.Zero, infra.WrapRepoErr("failed to decode car", err)
	}
	rate, err := pgconv.DecimalFromNumeric(row.DailyRate)
	if err != nil {
		return nil, decimal.Zero, infra.WrapRepoErr("failed to decode daily rate", err)
	}
	return c, rate, nil
}

func (r *CarRepository) Save(ctx context.Context, c *car.Car) error {
	affected, err := r.queries.UpdateCar(ctx, r.db, converter.CarToUpdateParams(c))
	if err != nil {
		return infra.WrapRepoErr("failed to update car", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CarRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteCar(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete car", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	return nil
}
