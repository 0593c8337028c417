package query

import (
	"context"

	"github.com/google/uuid"
)

const discountCodeColumns = `id, code, discount_type, discount_value, min_rental_days, max_discount_amount,
       valid_from, valid_until, usage_limit, times_used, is_active, created_at`

func scanDiscountCode(row interface{ Scan(dest ...any) error }) (DiscountCode, error) {
	var i DiscountCode
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.DiscountType,
		&i.DiscountValue,
		&i.MinRentalDays,
		&i.MaxDiscountAmount,
		&i.ValidFrom,
		&i.ValidUntil,
		&i.UsageLimit,
		&i.TimesUsed,
		&i.IsActive,
		&i.CreatedAt,
	)
	return i, err
}

const getDiscountCodeByCode = `SELECT ` + discountCodeColumns + ` FROM discount_codes WHERE code = UPPER($1)`

func (q *Queries) GetDiscountCodeByCode(ctx context.Context, db DBTX, code string) (DiscountCode, error) {
	return scanDiscountCode(db.QueryRow(ctx, getDiscountCodeByCode, code))
}

const getDiscountCodeByCodeForUpdate = getDiscountCodeByCode + ` FOR UPDATE`

func (q *Queries) GetDiscountCodeByCodeForUpdate(ctx context.Context, db DBTX, code string) (DiscountCode, error) {
	return scanDiscountCode(db.QueryRow(ctx, getDiscountCodeByCodeForUpdate, code))
}

// Zero rows affected means the limit was reached concurrently.
const incrementDiscountUsage = `
UPDATE discount_codes
SET times_used = times_used + 1
WHERE id = $1 AND (usage_limit IS NULL OR times_used < usage_limit)`

func (q *Queries) IncrementDiscountUsage(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, incrementDiscountUsage, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
