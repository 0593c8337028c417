package converter

import (
	"car-rental/internal/domain/car"
	"car-rental/internal/infra/query"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/pkg/pgconv"
)

func CarFromRow(row query.Car) (*car.Car, error) {
	status, err := car.NewStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "car %s", row.ID)
	}
	return car.Reconstruct(
		row.ID, row.CategoryID, row.BranchID,
		row.Brand, row.Model,
		int(row.Year),
		pgconv.StringPtrFromPgtype(row.Color),
		row.LicensePlate,
		pgconv.StringPtrFromPgtype(row.ImageUrl),
		status,
		int(row.Mileage),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func CarToUpdateParams(c *car.Car) query.UpdateCarParams {
	return query.UpdateCarParams{
		ID:           c.ID(),
		CategoryID:   c.CategoryID(),
		BranchID:     c.BranchID(),
		Brand:        c.Brand(),
		Model:        c.Model(),
		Year:         pgconv.IntToInt32(c.Year()),
		Color:        pgconv.StringPtrToPgtype(c.Color()),
		LicensePlate: c.LicensePlate(),
		ImageUrl:     pgconv.StringPtrToPgtype(c.ImageURL()),
		Status:       c.Status().String(),
		Mileage:      pgconv.IntToInt32(c.Mileage()),
		UpdatedAt:    pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}
