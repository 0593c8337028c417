package response

import (
	"time"

	"car-rental/internal/domain/rental"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// copyOption renders money with two decimals and calendar dates as YYYY-MM-DD.
// Timestamps keep their time.Time type and are not touched.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(decimal.Decimal).StringFixed(2), nil
			},
		},
		{
			SrcType: (*decimal.Decimal)(nil),
			DstType: (*string)(nil),
			Fn: func(src any) (any, error) {
				d, _ := src.(*decimal.Decimal)
				if d == nil {
					return (*string)(nil), nil
				}
				s := d.StringFixed(2)
				return &s, nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(time.Time).Format(rental.DateLayout), nil
			},
		},
	},
}

func copyInto(dst, src any) error {
	return copier.CopyWithOption(dst, src, copyOption)
}
