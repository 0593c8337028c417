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

type PaymentViewQueries interface {
	GetPaymentView(ctx context.Context, db query.DBTX, id uuid.UUID) (query.PaymentViewRow, error)
	GetLatestPaymentViewByRental(ctx context.Context, db query.DBTX, rentalID uuid.UUID) (query.PaymentViewRow, error)
	ListPaymentViewsFirstPage(ctx context.Context, db query.DBTX, arg query.ListPaymentViewsFirstPageParams) ([]query.PaymentViewRow, error)
	ListPaymentViewsKeyset(ctx context.Context, db query.DBTX, arg query.ListPaymentViewsKeysetParams) ([]query.PaymentViewRow, error)
}

type PaymentReadStore struct {
	queries PaymentViewQueries
	db      query.DBTX
}

func NewPaymentReadStore(queries PaymentViewQueries, db query.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PaymentView, error) {
	row, err := r.queries.GetPaymentView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by ID", err)
	}
	return decodePaymentView(row)
}

func (r *PaymentReadStore) FindLatestByRental(ctx context.Context, rentalID uuid.UUID) (*queries.PaymentView, error) {
	row, err := r.queries.GetLatestPaymentViewByRental(ctx, r.db, rentalID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found for rental", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by rental", err)
	}
	return decodePaymentView(row)
}

func (r *PaymentReadStore) ListByCustomerFirstPage(ctx context.Context, customerID uuid.UUID, limit int32) ([]*queries.PaymentView, error) {
	rows, err := r.queries.ListPaymentViewsFirstPage(ctx, r.db, query.ListPaymentViewsFirstPageParams{
		CustomerID: customerID,
		Limit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments first page", err)
	}
	return rowsToPaymentViews(rows)
}

func (r *PaymentReadStore) ListByCustomerKeyset(ctx context.Context, customerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.PaymentView, error) {
	rows, err := r.queries.ListPaymentViewsKeyset(ctx, r.db, query.ListPaymentViewsKeysetParams{
		CustomerID: customerID,
		CreatedAt:  pgconv.TimeToPgtype(lastCreatedAt),
		ID:         lastID,
		Limit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments keyset", err)
	}
	return rowsToPaymentViews(rows)
}

func decodePaymentView(row query.PaymentViewRow) (*queries.PaymentView, error) {
	view, err := rowToPaymentView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode payment", err)
	}
	return view, nil
}

func rowsToPaymentViews(rows []query.PaymentViewRow) ([]*queries.PaymentView, error) {
	result := make([]*queries.PaymentView, len(rows))
	for i, row := range rows {
		view, err := decodePaymentView(row)
		if err != nil {
			return nil, err
		}
		result[i] = view
	}
	return result, nil
}

func rowToPaymentView(row query.PaymentViewRow) (*queries.PaymentView, error) {
	var d numerics
	view := &queries.PaymentView{
		ID:            row.ID,
		RentalID:      row.RentalID,
		CustomerID:    row.CustomerID,
		CarID:         row.CarID,
		CarBrand:      row.CarBrand,
		CarModel:      row.CarModel,
		CarImageURL:   pgconv.StringPtrFromPgtype(row.CarImageUrl),
		CategoryName:  row.CategoryName,
		StartDate:     pgconv.DateFromPgtype(row.StartDate),
		EndDate:       pgconv.DateFromPgtype(row.EndDate),
		RentalStatus:  row.RentalStatus,
		RentalAmount:  d.decode(row.RentalAmount),
		Amount:        d.decode(row.Amount),
		PaymentMethod: row.PaymentMethod,
		PaymentStatus: row.PaymentStatus,
		TransactionID: pgconv.StringPtrFromPgtype(row.TransactionID),
		RefundReason:  pgconv.StringPtrFromPgtype(row.RefundReason),
		PaymentDate:   pgconv.TimeFromPgtype(row.PaymentDate),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}
	if d.err != nil {
		return nil, d.err
	}
	return view, nil
}
