package converter

import (
	"car-rental/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func decimals(ns ...pgtype.Numeric) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, len(ns))
	for i, n := range ns {
		d, err := pgconv.DecimalFromNumeric(n)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}
