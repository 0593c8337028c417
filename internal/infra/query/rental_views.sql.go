package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type RentalViewRow struct {
	ID             uuid.UUID
	CustomerID     uuid.UUID
	CustomerName   string
	CustomerEmail  string
	CarID          uuid.UUID
	CarBrand       string
	CarModel       string
	LicensePlate   string
	CarImageUrl    pgtype.Text
	CategoryName   string
	BranchID       uuid.UUID
	BranchName     string
	StartDate      pgtype.Date
	EndDate        pgtype.Date
	TotalDays      int32
	DailyRate      pgtype.Numeric
	TotalAmount    pgtype.Numeric
	DiscountCodeID pgtype.UUID
	DiscountCode   pgtype.Text
	DiscountAmount pgtype.Numeric
	FinalAmount    pgtype.Numeric
	Status         string
	StartMileage   pgtype.Int4
	EndMileage     pgtype.Int4
	PaymentStatus  pgtype.Text
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

const rentalViewSelect = `
SELECT r.id, r.customer_id, cu.name, cu.email, r.car_id, c.brand, c.model, c.license_plate,
       c.image_url, cat.name, r.branch_id, b.name, r.start_date, r.end_date, r.total_days,
       r.daily_rate, r.total_amount, r.discount_code_id, dc.code, r.discount_amount,
       r.final_amount, r.status, r.start_mileage, r.end_mileage, p.payment_status,
       r.created_at, r.updated_at
FROM rentals r
JOIN customers cu ON cu.id = r.customer_id
JOIN cars c ON c.id = r.car_id
JOIN rental_categories cat ON cat.id = c.category_id
JOIN branches b ON b.id = r.branch_id
LEFT JOIN discount_codes dc ON dc.id = r.discount_code_id
LEFT JOIN LATERAL (
    SELECT payment_status FROM payments
    WHERE rental_id = r.id
    ORDER BY created_at DESC, id DESC
    LIMIT 1
) p ON TRUE`

func scanRentalView(row pgx.Row) (RentalViewRow, error) {
	var i RentalViewRow
	err := row.Scan(
		&i.ID,
		&i.CustomerID,
		&i.CustomerName,
		&i.CustomerEmail,
		&i.CarID,
		&i.CarBrand,
		&i.CarModel,
		&i.LicensePlate,
		&i.CarImageUrl,
		&i.CategoryName,
		&i.BranchID,
		&i.BranchName,
		&i.StartDate,
		&i.EndDate,
		&i.TotalDays,
		&i.DailyRate,
		&i.TotalAmount,
		&i.DiscountCodeID,
		&i.DiscountCode,
		&i.DiscountAmount,
		&i.FinalAmount,
		&i.Status,
		&i.StartMileage,
		&i.EndMileage,
		&i.PaymentStatus,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func collectRentalViews(rows pgx.Rows, err error) ([]RentalViewRow, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RentalViewRow
	for rows.Next() {
		i, err := scanRentalView(rows)
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

const getRentalView = rentalViewSelect + `
WHERE r.id = $1`

func (q *Queries) GetRentalView(ctx context.Context, db DBTX, id uuid.UUID) (RentalViewRow, error) {
	return scanRentalView(db.QueryRow(ctx, getRentalView, id))
}

type ListRentalViewsFirstPageParams struct {
	CustomerID pgtype.UUID
	Status     pgtype.Text
	Limit      int32
}

const listRentalViewsFirstPage = rentalViewSelect + `
WHERE ($1::uuid IS NULL OR r.customer_id = $1)
  AND ($2::text IS NULL OR r.status = $2)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $3`

func (q *Queries) ListRentalViewsFirstPage(ctx context.Context, db DBTX, arg ListRentalViewsFirstPageParams) ([]RentalViewRow, error) {
	return collectRentalViews(db.Query(ctx, listRentalViewsFirstPage, arg.CustomerID, arg.Status, arg.Limit))
}

type ListRentalViewsKeysetParams struct {
	CustomerID pgtype.UUID
	Status     pgtype.Text
	CreatedAt  pgtype.Timestamptz
	ID         uuid.UUID
	Limit      int32
}

const listRentalViewsKeyset = rentalViewSelect + `
WHERE ($1::uuid IS NULL OR r.customer_id = $1)
  AND ($2::text IS NULL OR r.status = $2)
  AND (r.created_at, r.id) < ($3, $4)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $5`

func (q *Queries) ListRentalViewsKeyset(ctx context.Context, db DBTX, arg ListRentalViewsKeysetParams) ([]RentalViewRow, error) {
	return collectRentalViews(db.Query(ctx, listRentalViewsKeyset, arg.CustomerID, arg.Status, arg.CreatedAt, arg.ID, arg.Limit))
}
