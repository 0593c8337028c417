package repository

import (
	"context"

	"car-rental/internal/domain/rental"
	"car-rental/internal/infra"
	"car-rental/internal/infra/query"
	"car-rental/internal/infra/repository/converter"
	"car-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RentalWriteQueries interface {
	CreateRental(ctx context.Context, db query.DBTX, arg query.CreateRentalParams) (uuid.UUID, error)
	GetRentalForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Rental, error)
	GetRentalCarID(ctx context.Context, db query.DBTX, id uuid.UUID) (uuid.UUID, error)
	UpdateRentalState(ctx context.Context, db query.DBTX, arg query.UpdateRentalStateParams) (int64, error)
	CountOverlappingRentals(ctx context.Context, db query.DBTX, arg query.CountOverlappingRentalsParams) (int64, error)
	CountRentalsForCarByStatus(ctx context.Context, db query.DBTX, carID uuid.UUID, statuses []string) (int64, error)
	DeleteRentalsForCarByStatus(ctx context.Context, db query.DBTX, carID uuid.UUID, statuses []string) (int64, error)
}

type RentalRepository struct {
	queries RentalWriteQueries
	db      query.DBTX
}

func NewRentalRepository(queries RentalWriteQueries, db query.DBTX) *RentalRepository {
	return &RentalRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RentalRepository) Create(ctx context.Context, rent *rental.Rental) (uuid.UUID, error) {
	id, err := r.queries.CreateRental(ctx, r.db, converter.RentalToCreateParams(rent))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create rental", err)
	}
	return id, nil
}

func (r *RentalRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*rental.Rental, error) {
	row, err := r.queries.GetRentalForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock rental", err)
	}

	rent, err := converter.RentalFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode rental", err)
	}
	return rent, nil
}

func (r *RentalRepository) CarIDOf(ctx context.Context, rentalID uuid.UUID) (uuid.UUID, error) {
	carID, err := r.queries.GetRentalCarID(ctx, r.db, rentalID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to find rental car", err)
	}
	return carID, nil
}

func (r *RentalRepository) Save(ctx context.Context, rent *rental.Rental) error {
	affected, err := r.queries.UpdateRentalState(ctx, r.db, converter.RentalToStateParams(rent))
	if err != nil {
		return infra.WrapRepoErr("failed to update rental", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("rental not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RentalRepository) HasOverlap(ctx context.Context, carID uuid.UUID, period rental.DateRange, statuses []rental.Status) (bool, error) {
	return hasOverlap(ctx, r.queries, r.db, carID, period, statuses)
}

func (r *RentalRepository) CountForCar(ctx context.Context, carID uuid.UUID, statuses []rental.Status) (int64, error) {
	n, err := r.queries.CountRentalsForCarByStatus(ctx, r.db, carID, rental.StatusStrings(statuses))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count rentals for car", err)
	}
	return n, nil
}

func (r *RentalRepository) DeleteForCar(ctx context.Context, carID uuid.UUID, statuses []rental.Status) (int64, error) {
	n, err := r.queries.DeleteRentalsForCarByStatus(ctx, r.db, carID, rental.StatusStrings(statuses))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete rentals for car", err)
	}
	return n, nil
}

type overlapQueries interface {
	CountOverlappingRentals(ctx context.Context, db query.DBTX, arg query.CountOverlappingRentalsParams) (int64, error)
}

func hasOverlap(ctx context.Context, q overlapQueries, db query.DBTX, carID uuid.UUID, period rental.DateRange, statuses []rental.Status) (bool, error) {
	n, err := q.CountOverlappingRentals(ctx, db, query.CountOverlappingRentalsParams{
		CarID:     carID,
		StartDate: pgconv.DateToPgtype(period.Start()),
		EndDate:   pgconv.DateToPgtype(period.End()),
		Statuses:  rental.StatusStrings(statuses),
		ExcludeID: pgtype.UUID{Valid: false},
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check rental overlap", err)
	}
	return n > 0, nil
}
