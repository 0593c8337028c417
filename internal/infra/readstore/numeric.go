package readstore

import (
	"car-rental/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// numerics decodes a run of columns and keeps the first error.
type numerics struct {
	err error
}

func (n *numerics) decode(pn pgtype.Numeric) decimal.Decimal {
	if n.err != nil {
		return decimal.Zero
	}
	d, err := pgconv.DecimalFromNumeric(pn)
	if err != nil {
		n.err = err
		return decimal.Zero
	}
	return d
}

func (n *numerics) decodePtr(pn pgtype.Numeric) *decimal.Decimal {
	if n.err != nil {
		return nil
	}
	d, err := pgconv.DecimalPtrFromNumeric(pn)
	if err != nil {
		n.err = err
		return nil
	}
	return d
}
