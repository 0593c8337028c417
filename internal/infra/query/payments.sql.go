package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CreatePaymentParams struct {
	ID            uuid.UUID
	RentalID      uuid.UUID
	Amount        pgtype.Numeric
	PaymentMethod string
	PaymentStatus string
	TransactionID pgtype.Text
	PaymentDate   pgtype.Timestamptz
	CreatedAt     pgtype.Timestamptz
}

const createPayment = `
INSERT INTO payments (id, rental_id, amount, payment_method, payment_status, transaction_id, payment_date, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

func (q *Queries) CreatePayment(ctx context.Context, db DBTX, arg CreatePaymentParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, createPayment,
		arg.ID,
		arg.RentalID,
		arg.Amount,
		arg.PaymentMethod,
		arg.PaymentStatus,
		arg.TransactionID,
		arg.PaymentDate,
		arg.CreatedAt,
	).Scan(&id)
	return id, err
}

const getPaymentForUpdate = `
SELECT id, rental_id, amount, payment_method, payment_status, transaction_id, refund_reason,
       payment_date, created_at
FROM payments
WHERE id = $1
FOR UPDATE`

func (q *Queries) GetPaymentForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Payment, error) {
	var i Payment
	err := db.QueryRow(ctx, getPaymentForUpdate, id).Scan(
		&i.ID,
		&i.RentalID,
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

const getPaymentRentalID = `SELECT rental_id FROM payments WHERE id = $1`

func (q *Queries) GetPaymentRentalID(ctx context.Context, db DBTX, id uuid.UUID) (uuid.UUID, error) {
	var rentalID uuid.UUID
	err := db.QueryRow(ctx, getPaymentRentalID, id).Scan(&rentalID)
	return rentalID, err
}

const hasOpenPayment = `
SELECT EXISTS (
    SELECT 1 FROM payments
    WHERE rental_id = $1 AND payment_status IN ('pending', 'completed')
)`

func (q *Queries) HasOpenPayment(ctx context.Context, db DBTX, rentalID uuid.UUID) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, hasOpenPayment, rentalID).Scan(&exists)
	return exists, err
}

type UpdatePaymentStatusParams struct {
	ID            uuid.UUID
	PaymentStatus string
	RefundReason  pgtype.Text
}

const updatePaymentStatus = `
UPDATE payments SET payment_status = $2, refund_reason = $3 WHERE id = $1`

func (q *Queries) UpdatePaymentStatus(ctx context.Context, db DBTX, arg UpdatePaymentStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updatePaymentStatus, arg.ID, arg.PaymentStatus, arg.RefundReason)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
