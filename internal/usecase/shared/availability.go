package shared

import (
	"context"

	"car-rental/internal/domain/rental"
	"car-rental/internal/pkg/config"

	"github.com/google/uuid"
)

// AvailabilityChecker answers whether a car is free over a date range.
// Run it inside the booking transaction after the car row is locked.
type AvailabilityChecker struct {
	blocking []rental.Status
}

func NewAvailabilityChecker(cfg config.RentalConfig) *AvailabilityChecker {
	return &AvailabilityChecker{blocking: rental.BlockingStatuses(cfg.BlockPending)}
}

func (c *AvailabilityChecker) IsAvailable(ctx context.Context, finder OverlapFinder, carID uuid.UUID, period rental.DateRange) (bool, error) {
	overlaps, err := finder.HasOverlap(ctx, carID, period, c.blocking)
	if err != nil {
		return false, err
	}
	return !overlaps, nil
}

func (c *AvailabilityChecker) BlockingStatuses() []rental.Status {
	return c.blocking
}
