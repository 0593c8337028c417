package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CarWithRate is a car row plus its category's current daily rate.
type CarWithRate struct {
	Car
	DailyRate pgtype.Numeric
}

const getCarForUpdate = `
SELECT c.id, c.category_id, c.branch_id, c.brand, c.model, c.year, c.color,
       c.license_plate, c.image_url, c.status, c.mileage, c.created_at, c.updated_at,
       cat.daily_rate
FROM cars c
JOIN rental_categories cat ON cat.id = c.category_id
WHERE c.id = $1
FOR UPDATE OF c`

func (q *Queries) GetCarForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (CarWithRate, error) {
	var i CarWithRate
	err := db.QueryRow(ctx, getCarForUpdate, id).Scan(
		&i.ID,
		&i.CategoryID,
		&i.BranchID,
		&i.Brand,
		&i.Model,
		&i.Year,
		&i.Color,
		&i.LicensePlate,
		&i.ImageUrl,
		&i.Status,
		&i.Mileage,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.DailyRate,
	)
	return i, err
}

type CarDetailRow struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	DailyRate    pgtype.Numeric
	BranchID     uuid.UUID
	BranchName   string
	Brand        string
	Model        string
	Year         int32
	Color        pgtype.Text
	LicensePlate string
	ImageUrl     pgtype.Text
	Status       string
	Mileage      int32
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

const getCarDetail = `
SELECT c.id, c.category_id, cat.name, cat.daily_rate, c.branch_id, b.name,
       c.brand, c.model, c.year, c.color, c.license_plate, c.image_url,
       c.status, c.mileage, c.created_at, c.updated_at
FROM cars c
JOIN rental_categories cat ON cat.id = c.category_id
JOIN branches b ON b.id = c.branch_id
WHERE c.id = $1`

func (q *Queries) GetCarDetail(ctx context.Context, db DBTX, id uuid.UUID) (CarDetailRow, error) {
	var i CarDetailRow
	err := db.QueryRow(ctx, getCarDetail, id).Scan(
		&i.ID,
		&i.CategoryID,
		&i.CategoryName,
		&i.DailyRate,
		&i.BranchID,
		&i.BranchName,
		&i.Brand,
		&i.Model,
		&i.Year,
		&i.Color,
		&i.LicensePlate,
		&i.ImageUrl,
		&i.Status,
		&i.Mileage,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const carExists = `SELECT EXISTS (SELECT 1 FROM cars WHERE id = $1)`

func (q *Queries) CarExists(ctx context.Context, db DBTX, id uuid.UUID) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, carExists, id).Scan(&exists)
	return exists, err
}

type UpdateCarParams struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	BranchID     uuid.UUID
	Brand        string
	Model        string
	Year         int32
	Color        pgtype.Text
	LicensePlate string
	ImageUrl     pgtype.Text
	Status       string
	Mileage      int32
	UpdatedAt    pgtype.Timestamptz
}

const updateCar = `
UPDATE cars
SET category_id = $2, branch_id = $3, brand = $4, model = $5, year = $6, color = $7,
    license_plate = $8, image_url = $9, status = $10, mileage = $11, updated_at = $12
WHERE id = $1`

func (q *Queries) UpdateCar(ctx context.Context, db DBTX, arg UpdateCarParams) (int64, error) {
	tag, err := db.Exec(ctx, updateCar,
		arg.ID,
		arg.CategoryID,
		arg.BranchID,
		arg.Brand,
		arg.Model,
		arg.Year,
		arg.Color,
		arg.LicensePlate,
		arg.ImageUrl,
		arg.Status,
		arg.Mileage,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteCar = `DELETE FROM cars WHERE id = $1`

func (q *Queries) DeleteCar(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteCar, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
