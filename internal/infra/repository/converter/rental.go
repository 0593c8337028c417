package converter

import (
	"car-rental/internal/domain/rental"
	"car-rental/internal/infra/query"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/pkg/pgconv"
)

func RentalToCreateParams(r *rental.Rental) query.CreateRentalParams {
	return query.CreateRentalParams{
		ID:             r.ID(),
		CustomerID:     r.CustomerID(),
		CarID:          r.CarID(),
		BranchID:       r.BranchID(),
		StartDate:      pgconv.DateToPgtype(r.Period().Start()),
		EndDate:        pgconv.DateToPgtype(r.Period().End()),
		TotalDays:      pgconv.IntToInt32(r.TotalDays()),
		DailyRate:      pgconv.DecimalToNumeric(r.DailyRate()),
		TotalAmount:    pgconv.DecimalToNumeric(r.TotalAmount()),
		DiscountCodeID: pgconv.UUIDPtrToPgtype(r.DiscountCodeID()),
		DiscountAmount: pgconv.DecimalToNumeric(r.DiscountAmount()),
		FinalAmount:    pgconv.DecimalToNumeric(r.FinalAmount()),
		Status:         r.Status().String(),
		CreatedAt:      pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RentalToStateParams(r *rental.Rental) query.UpdateRentalStateParams {
	return query.UpdateRentalStateParams{
		ID:           r.ID(),
		Status:       r.Status().String(),
		StartMileage: pgconv.IntPtrToInt4(r.StartMileage()),
		EndMileage:   pgconv.IntPtrToInt4(r.EndMileage()),
		UpdatedAt:    pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RentalFromRow(row query.Rental) (*rental.Rental, error) {
	status, err := rental.NewStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "rental %s", row.ID)
	}
	period, err := rental.NewDateRange(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate))
	if err != nil {
		return nil, errs.Wrapf(err, "rental %s", row.ID)
	}
	amounts, err := decimals(row.DailyRate, row.TotalAmount, row.DiscountAmount, row.FinalAmount)
	if err != nil {
		return nil, errs.Wrapf(err, "rental %s", row.ID)
	}

	return rental.Reconstruct(
		row.ID, row.CustomerID, row.CarID, row.BranchID,
		period,
		int(row.TotalDays),
		amounts[0], amounts[1],
		pgconv.UUIDPtrFromPgtype(row.DiscountCodeID),
		amounts[2], amounts[3],
		status,
		pgconv.IntPtrFromInt4(row.StartMileage),
		pgconv.IntPtrFromInt4(row.EndMileage),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
