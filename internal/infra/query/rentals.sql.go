package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CreateRentalParams struct {
	ID             uuid.UUID
	CustomerID     uuid.UUID
	CarID          uuid.UUID
	BranchID       uuid.UUID
	StartDate      pgtype.Date
	EndDate        pgtype.Date
	TotalDays      int32
	DailyRate      pgtype.Numeric
	TotalAmount    pgtype.Numeric
	DiscountCodeID pgtype.UUID
	DiscountAmount pgtype.Numeric
	FinalAmount    pgtype.Numeric
	Status         string
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

const createRental = `
INSERT INTO rentals (
    id, customer_id, car_id, branch_id, start_date, end_date, total_days, daily_rate,
    total_amount, discount_code_id, discount_amount, final_amount, status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING id`

func (q *Queries) CreateRental(ctx context.Context, db DBTX, arg CreateRentalParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, createRental,
		arg.ID,
		arg.CustomerID,
		arg.CarID,
		arg.BranchID,
		arg.StartDate,
		arg.EndDate,
		arg.TotalDays,
		arg.DailyRate,
		arg.TotalAmount,
		arg.DiscountCodeID,
		arg.DiscountAmount,
		arg.FinalAmount,
		arg.Status,
		arg.CreatedAt,
		arg.UpdatedAt,
	).Scan(&id)
	return id, err
}

const rentalColumns = `id, customer_id, car_id, branch_id, start_date, end_date, total_days, daily_rate,
       total_amount, discount_code_id, discount_amount, final_amount, status, start_mileage,
       end_mileage, created_at, updated_at`

const getRentalForUpdate = `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1 FOR UPDATE`

func (q *Queries) GetRentalForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Rental, error) {
	var i Rental
	err := db.QueryRow(ctx, getRentalForUpdate, id).Scan(
		&i.ID,
		&i.CustomerID,
		&i.CarID,
		&i.BranchID,
		&i.StartDate,
		&i.EndDate,
		&i.TotalDays,
		&i.DailyRate,
		&i.TotalAmount,
		&i.DiscountCodeID,
		&i.DiscountAmount,
		&i.FinalAmount,
		&i.Status,
		&i.StartMileage,
		&i.EndMileage,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getRentalCarID = `SELECT car_id FROM rentals WHERE id = $1`

// GetRentalCarID lets callers lock the car before the rental.
func (q *Queries) GetRentalCarID(ctx context.Context, db DBTX, id uuid.UUID) (uuid.UUID, error) {
	var carID uuid.UUID
	err := db.QueryRow(ctx, getRentalCarID, id).Scan(&carID)
	return carID, err
}

type UpdateRentalStateParams struct {
	ID           uuid.UUID
	Status       string
	StartMileage pgtype.Int4
	EndMileage   pgtype.Int4
	UpdatedAt    pgtype.Timestamptz
}

const updateRentalState = `
UPDATE rentals
SET status = $2, start_mileage = $3, end_mileage = $4, updated_at = $5
WHERE id = $1`

func (q *Queries) UpdateRentalState(ctx context.Context, db DBTX, arg UpdateRentalStateParams) (int64, error) {
	tag, err := db.Exec(ctx, updateRentalState,
		arg.ID,
		arg.Status,
		arg.StartMileage,
		arg.EndMileage,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type CountOverlappingRentalsParams struct {
	CarID     uuid.UUID
	StartDate pgtype.Date
	EndDate   pgtype.Date
	Statuses  []string
	ExcludeID pgtype.UUID
}

// Half-open ranges: a booking ending on a day does not overlap one starting on it.
const countOverlappingRentals = `
SELECT COUNT(*)
FROM rentals
WHERE car_id = $1
  AND start_date < $3
  AND end_date > $2
  AND status = ANY($4::text[])
  AND ($5::uuid IS NULL OR id <> $5)`

func (q *Queries) CountOverlappingRentals(ctx context.Context, db DBTX, arg CountOverlappingRentalsParams) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countOverlappingRentals,
		arg.CarID,
		arg.StartDate,
		arg.EndDate,
		arg.Statuses,
		arg.ExcludeID,
	).Scan(&count)
	return count, err
}

const countRentalsForCarByStatus = `
SELECT COUNT(*) FROM rentals WHERE car_id = $1 AND status = ANY($2::text[])`

func (q *Queries) CountRentalsForCarByStatus(ctx context.Context, db DBTX, carID uuid.UUID, statuses []string) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countRentalsForCarByStatus, carID, statuses).Scan(&count)
	return count, err
}

const deleteRentalsForCarByStatus = `DELETE FROM rentals WHERE car_id = $1 AND status = ANY($2::text[])`

func (q *Queries) DeleteRentalsForCarByStatus(ctx context.Context, db DBTX, carID uuid.UUID, statuses []string) (int64, error) {
	tag, err := db.Exec(ctx, deleteRentalsForCarByStatus, carID, statuses)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
