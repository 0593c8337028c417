//go:build unit || e2e

package builder

import (
	"time"

	"car-rental/internal/domain/discount"
	"car-rental/internal/domain/rental"
	reqdto "car-rental/internal/handler/dto/request"
	"car-rental/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RentalBuilder books a two-day rental starting tomorrow by default.
type RentalBuilder struct {
	Now          time.Time
	CarID        uuid.UUID
	BranchID     uuid.UUID
	CustomerID   uuid.UUID
	DailyRate    decimal.Decimal
	StartDate    time.Time
	EndDate      time.Time
	DiscountCode *string
	Code         *discount.Code
	Status       rental.Status
	StartMileage *int
}

func NewRentalBuilder() *RentalBuilder {
	now := time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)
	start := time.Date(2030, 6, 2, 0, 0, 0, 0, time.UTC)
	return &RentalBuilder{
		Now:        now,
		CarID:      uuid.New(),
		BranchID:   uuid.New(),
		CustomerID: uuid.New(),
		DailyRate:  decimal.NewFromInt(35),
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 2),
		Status:     rental.StatusPending,
	}
}

func (b *RentalBuilder) WithDates(start, end time.Time) *RentalBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *RentalBuilder) WithDailyRate(rate decimal.Decimal) *RentalBuilder {
	b.DailyRate = rate
	return b
}

func (b *RentalBuilder) WithDiscountCode(code string) *RentalBuilder {
	b.DiscountCode = &code
	return b
}

func (b *RentalBuilder) WithCode(code *discount.Code) *RentalBuilder {
	b.Code = code
	return b
}

func (b *RentalBuilder) WithStatus(status rental.Status) *RentalBuilder {
	b.Status = status
	return b
}

func (b *RentalBuilder) WithStartMileage(m int) *RentalBuilder {
	b.StartMileage = &m
	return b
}

func (b *RentalBuilder) Services() *rental.Services {
	return &rental.Services{Clock: clock.NewMockClock(b.Now), Location: time.UTC}
}

func (b *RentalBuilder) BuildDomain() (*rental.Rental, error) {
	period, err := rental.NewDateRange(b.StartDate, b.EndDate)
	if err != nil {
		return nil, err
	}
	return rental.NewRental(b.Services(), rental.CarSpec{
		ID:        b.CarID,
		BranchID:  b.BranchID,
		DailyRate: b.DailyRate,
	}, b.CustomerID, period, b.Code)
}

// BuildStored reconstructs a persisted rental in Status, bypassing the state graph.
func (b *RentalBuilder) BuildStored() *rental.Rental {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return rental.Reconstruct(
		r.ID(), r.CustomerID(), r.CarID(), r.BranchID(),
		r.Period(), r.TotalDays(),
		r.DailyRate(), r.TotalAmount(),
		r.DiscountCodeID(),
		r.DiscountAmount(), r.FinalAmount(),
		b.Status,
		b.StartMileage, nil,
		r.CreatedAt(), r.UpdatedAt(),
	)
}

func (b *RentalBuilder) BuildDTO() reqdto.CreateRentalRequest {
	return reqdto.CreateRentalRequest{
		CarID:        b.CarID,
		StartDate:    b.StartDate.Format(rental.DateLayout),
		EndDate:      b.EndDate.Format(rental.DateLayout),
		DiscountCode: b.DiscountCode,
	}
}
