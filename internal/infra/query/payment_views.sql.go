package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentViewRow struct {
	ID            uuid.UUID
	RentalID      uuid.UUID
	CustomerID    uuid.UUID
	CarID         uuid.UUID
	CarBrand      string
	CarModel      string
	CarImageUrl   pgtype.Text
	CategoryName  string
	StartDate     pgtype.Date
	EndDate       pgtype.Date
	RentalStatus  string
	RentalAmount  pgtype.Numeric
	Amount        pgtype.Numeric
	PaymentMethod string
	PaymentStatus string
	TransactionID pgtype.Text
	RefundReason  pgtype.Text
	PaymentDate   pgtype.Timestamptz
	CreatedAt     pgtype.Timestamptz
}

const paymentViewSelect = `
SELECT p.id, p.rental_id, r.customer_id, r.car_id, c.brand, c.model, c.image_url, cat.name,
       r.start_date, r.end_date, r.status, r.final_amount, p.amount, p.payment_method,
       p.payment_status, p.transaction_id, p.refund_reason, p.payment_date, p.created_at
FROM payments p
JOIN rentals r ON r.id = p.rental_id
JOIN cars c ON c.id = r.car_id
JOIN rental_categories cat ON cat.id = c.category_id`

func scanPaymentView(row pgx.Row) (PaymentViewRow, error) {
	var i PaymentViewRow
	err := row.Scan(
		&i.ID,
		&i.RentalID,
		&i.CustomerID,
		&i.CarID,
		&i.CarBrand,
		&i.CarModel,
		&i.CarImageUrl,
		&i.CategoryName,
		&i.StartDate,
		&i.EndDate,
		&i.RentalStatus,
		&i.RentalAmount,
		&i.Amount,
		&i.PaymentMethod,
		&i.PaymentStatus,
		&i.TransactionID,
		&i.RefundReason,
		&i.PaymentDate,
		&i.CreatedAt,
	)
	return i, err
}

func collectPaymentViews(rows pgx.Rows, err error) ([]PaymentViewRow, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []PaymentViewRow
	for rows.Next() {
		i, err := scanPaymentView(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getPaymentView = paymentViewSelect + `
WHERE p.id = $1`

func (q *Queries) GetPaymentView(ctx context.Context, db DBTX, id uuid.UUID) (PaymentViewRow, error) {
	return scanPaymentView(db.QueryRow(ctx, getPaymentView, id))
}

// A rental may carry refunded or failed attempts; the newest one wins.
const getLatestPaymentViewByRental = paymentViewSelect + `
WHERE p.rental_id = $1
ORDER BY p.created_at DESC, p.id DESC
LIMIT 1`

func (q *Queries) GetLatestPaymentViewByRental(ctx context.Context, db DBTX, rentalID uuid.UUID) (PaymentViewRow, error) {
	return scanPaymentView(db.QueryRow(ctx, getLatestPaymentViewByRental, rentalID))
}

type ListPaymentViewsFirstPageParams struct {
	CustomerID uuid.UUID
	Limit      int32
}

const listPaymentViewsFirstPage = paymentViewSelect + `
WHERE r.customer_id = $1
ORDER BY p.created_at DESC, p.id DESC
LIMIT $2`

func (q *Queries) ListPaymentViewsFirstPage(ctx context.Context, db DBTX, arg ListPaymentViewsFirstPageParams) ([]PaymentViewRow, error) {
	return collectPaymentViews(db.Query(ctx, listPaymentViewsFirstPage, arg.CustomerID, arg.Limit))
}

type ListPaymentViewsKeysetParams struct {
	CustomerID uuid.UUID
	CreatedAt  pgtype.Timestamptz
	ID         uuid.UUID
	Limit      int32
}

const listPaymentViewsKeyset = paymentViewSelect + `
WHERE r.customer_id = $1
  AND (p.created_at, p.id) < ($2, $3)
ORDER BY p.created_at DESC, p.id DESC
LIMIT $4`

func (q *Queries) ListPaymentViewsKeyset(ctx context.Context, db DBTX, arg ListPaymentViewsKeysetParams) ([]PaymentViewRow, error) {
	return collectPaymentViews(db.Query(ctx, listPaymentViewsKeyset, arg.CustomerID, arg.CreatedAt, arg.ID, arg.Limit))
}
