package converter

import (
	"car-rental/internal/domain/discount"
	"car-rental/internal/infra/query"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/pkg/pgconv"
)

func DiscountCodeFromRow(row query.DiscountCode) (*discount.Code, error) {
	discountType, err := discount.NewType(row.DiscountType)
	if err != nil {
		return nil, errs.Wrapf(err, "discount code %s", row.Code)
	}
	value, err := pgconv.DecimalFromNumeric(row.DiscountValue)
	if err != nil {
		return nil, errs.Wrapf(err, "discount code %s", row.Code)
	}
	maxAmount, err := pgconv.DecimalPtrFromNumeric(row.MaxDiscountAmount)
	if err != nil {
		return nil, errs.Wrapf(err, "discount code %s", row.Code)
	}

	var usageLimit *int
	if row.UsageLimit.Valid {
		limit := int(row.UsageLimit.Int32)
		usageLimit = &limit
	}

	return discount.Reconstruct(
		row.ID,
		row.Code,
		discountType,
		value,
		int(row.MinRentalDays),
		maxAmount,
		pgconv.DateFromPgtype(row.ValidFrom),
		pgconv.DateFromPgtype(row.ValidUntil),
		usageLimit,
		int(row.TimesUsed),
		row.IsActive,
	), nil
}
