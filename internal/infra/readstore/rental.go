package readstore

import (
	"context"
	"time"

	"car-rental/internal/infra"
	"car-rental/internal/infra/query"
	"car-rental/internal/pkg/pgconv"
	"car-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type RentalViewQueries interface {
	GetRentalView(ctx context.Context, db query.DBTX, id uuid.UUID) (query.RentalViewRow, error)
	ListRentalViewsFirstPage(ctx context.Context, db query.DBTX, arg query.ListRentalViewsFirstPageParams) ([]query.RentalViewRow, error)
	ListRentalViewsKeyset(ctx context.Context, db query.DBTX, arg query.ListRentalViewsKeysetParams) ([]query.RentalViewRow, error)
}

type RentalReadStore struct {
	queries RentalViewQueries
	db      query.DBTX
}

func NewRentalReadStore(queries RentalViewQueries, db query.DBTX) *RentalReadStore {
	return &RentalReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RentalReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RentalView, error) {
	row, err := r.queries.GetRentalView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental by ID", err)
	}

	view, err := rowToRentalView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode rental", err)
	}
	return view, nil
}

func (r *RentalReadStore) ListFirstPage(ctx context.Context, filter queries.RentalFilter, limit int32) ([]*queries.RentalView, error) {
	rows, err := r.queries.ListRentalViewsFirstPage(ctx, r.db, query.ListRentalViewsFirstPageParams{
		CustomerID: pgconv.UUIDPtrToPgtype(filter.CustomerID),
		Status:     pgconv.StringPtrToPgtype(filter.Status),
		Limit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rentals first page", err)
	}
	return rowsToRentalViews(rows)
}

func (r *RentalReadStore) ListKeyset(ctx context.Context, filter queries.RentalFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.RentalView, error) {
	rows, err := r.queries.ListRentalViewsKeyset(ctx, r.db, query.ListRentalViewsKeysetParams{
		CustomerID: pgconv.UUIDPtrToPgtype(filter.CustomerID),
		Status:     pgconv.StringPtrToPgtype(filter.Status),
		CreatedAt:  pgconv.TimeToPgtype(lastCreatedAt),
		ID:         lastID,
		Limit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rentals keyset", err)
	}
	return rowsToRentalViews(rows)
}

func rowsToRentalViews(rows []query.RentalViewRow) ([]*queries.RentalView, error) {
	result := make([]*queries.RentalView, len(rows))
	for i, row := range rows {
		view, err := rowToRentalView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode rental", err)
		}
		result[i] = view
	}
	return result, nil
}

func rowToRentalView(row query.RentalViewRow) (*queries.RentalView, error) {
	var d numerics
	view := &queries.RentalView{
		ID:             row.ID,
		CustomerID:     row.CustomerID,
		CustomerName:   row.CustomerName,
		CustomerEmail:  row.CustomerEmail,
		CarID:          row.CarID,
		CarBrand:       row.CarBrand,
		CarModel:       row.CarModel,
		LicensePlate:   row.LicensePlate,
		CarImageURL:    pgconv.StringPtrFromPgtype(row.CarImageUrl),
		CategoryName:   row.CategoryName,
		BranchID:       row.BranchID,
		BranchName:     row.BranchName,
		StartDate:      pgconv.DateFromPgtype(row.StartDate),
		EndDate:        pgconv.DateFromPgtype(row.EndDate),
		TotalDays:      int(row.TotalDays),
		DailyRate:      d.decode(row.DailyRate),
		TotalAmount:    d.decode(row.TotalAmount),
		DiscountCodeID: pgconv.UUIDPtrFromPgtype(row.DiscountCodeID),
		DiscountCode:   pgconv.StringPtrFromPgtype(row.DiscountCode),
		DiscountAmount: d.decode(row.DiscountAmount),
		FinalAmount:    d.decode(row.FinalAmount),
		Status:         row.Status,
		StartMileage:   pgconv.IntPtrFromInt4(row.StartMileage),
		EndMileage:     pgconv.IntPtrFromInt4(row.EndMileage),
		PaymentStatus:  pgconv.StringPtrFromPgtype(row.PaymentStatus),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if d.err != nil {
		return nil, d.err
	}
	return view, nil
}
