package rental

import (
	"errors"
	"fmt"
	"time"

	"car-rental/internal/domain/discount"
	"car-rental/internal/domain/pricing"
	"car-rental/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus     = errors.New("invalid rental status")
	ErrInvalidTransition = errors.New("invalid rental status transition")
	ErrInvalidState      = errors.New("rental is not active")
	ErrInvalidMileage    = errors.New("invalid end mileage")
	ErrMileageUnknown    = errors.New("car mileage must not be negative")
)

// TransitionError carries the rejected edge of the state graph.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot change status from %s to %s", e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

type Services struct {
	Clock    clock.Clock
	Location *time.Location
}

func (s *Services) Today() time.Time {
	return clock.Today(s.Clock, s.Location)
}

// CarSpec is the slice of car state a booking is priced from.
type CarSpec struct {
	ID        uuid.UUID
	BranchID  uuid.UUID
	DailyRate decimal.Decimal
}

type Rental struct {
	id             uuid.UUID
	customerID     uuid.UUID
	carID          uuid.UUID
	branchID       uuid.UUID
	period         DateRange
	totalDays      int
	dailyRate      decimal.Decimal
	totalAmount    decimal.Decimal
	discountCodeID *uuid.UUID
	discountAmount decimal.Decimal
	finalAmount    decimal.Decimal
	status         Status
	startMileage   *int
	endMileage     *int
	createdAt      time.Time
	updatedAt      time.Time
}

// NewRental books car for customerID over period. A non-nil code must pass
// validation for the booking's length or the booking is refused.
func NewRental(services *Services, car CarSpec, customerID uuid.UUID, period DateRange, code *discount.Code) (*Rental, error) {
	today := services.Today()
	if period.StartsBefore(today) {
		return nil, ErrStartDateInPast
	}

	quote, err := pricing.Calculate(car.DailyRate, period.Start(), period.End(), decimal.Zero)
	if err != nil {
		return nil, err
	}

	var codeID *uuid.UUID
	if code != nil {
		if err := code.Validate(today, quote.Days); err != nil {
			return nil, err
		}
		quote = quote.WithDiscount(code.EffectiveAmount(quote.TotalAmount))
		id := code.ID()
		codeID = &id
	}

	now := services.Clock.Now()
	return &Rental{
		id:             uuid.New(),
		customerID:     customerID,
		carID:          car.ID,
		branchID:       car.BranchID,
		period:         period,
		totalDays:      quote.Days,
		dailyRate:      quote.DailyRate,
		totalAmount:    quote.TotalAmount,
		discountCodeID: codeID,
		discountAmount: quote.DiscountAmount,
		finalAmount:    quote.FinalAmount,
		status:         StatusPending,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func Reconstruct(
	id, customerID, carID, branchID uuid.UUID,
	period DateRange,
	totalDays int,
	dailyRate, totalAmount decimal.Decimal,
	discountCodeID *uuid.UUID,
	discountAmount, finalAmount decimal.Decimal,
	status Status,
	startMileage, endMileage *int,
	createdAt, updatedAt time.Time,
) *Rental {
	return &Rental{
		id:             id,
		customerID:     customerID,
		carID:          carID,
		branchID:       branchID,
		period:         period,
		totalDays:      totalDays,
		dailyRate:      dailyRate,
		totalAmount:    totalAmount,
		discountCodeID: discountCodeID,
		discountAmount: discountAmount,
		finalAmount:    finalAmount,
		status:         status,
		startMileage:   startMileage,
		endMileage:     endMileage,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// TransitionTo moves along the state graph and leaves the rental untouched on failure.
func (r *Rental) TransitionTo(to Status, now time.Time) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if !r.status.CanTransitionTo(to) {
		return &TransitionError{From: r.status, To: to}
	}
	r.status = to
	r.updatedAt = now
	return nil
}

func (r *Rental) Confirm(now time.Time) error {
	return r.TransitionTo(StatusConfirmed, now)
}

// Activate hands the car over, recording the odometer reading.
func (r *Rental) Activate(carMileage int, now time.Time) error {
	if carMileage < 0 {
		return ErrMileageUnknown
	}
	if err := r.TransitionTo(StatusActive, now); err != nil {
		return err
	}
	m := carMileage
	r.startMileage = &m
	return nil
}

// Complete closes an active rental at endMileage.
func (r *Rental) Complete(endMileage int, now time.Time) error {
	if r.status != StatusActive {
		return ErrInvalidState
	}
	if endMileage < 0 {
		return ErrInvalidMileage
	}
	if r.startMileage != nil && endMileage < *r.startMileage {
		return ErrInvalidMileage
	}
	if err := r.TransitionTo(StatusCompleted, now); err != nil {
		return err
	}
	m := endMileage
	r.endMileage = &m
	return nil
}

// CancelForRefund is the one path allowed to leave the graph: a refunded
// rental is cancelled unless it already completed. It reports whether the
// status changed and whether the car was out on the road.
func (r *Rental) CancelForRefund(now time.Time) (changed bool, wasActive bool) {
	if r.status.IsTerminal() {
		return false, false
	}
	wasActive = r.status == StatusActive
	r.status = StatusCancelled
	r.updatedAt = now
	return true, wasActive
}

func (r *Rental) IsPayable() bool {
	return r.status == StatusPending || r.status == StatusConfirmed
}

func (r *Rental) ID() uuid.UUID                   { return r.id }
func (r *Rental) CustomerID() uuid.UUID           { return r.customerID }
func (r *Rental) CarID() uuid.UUID                { return r.carID }
func (r *Rental) BranchID() uuid.UUID             { return r.branchID }
func (r *Rental) Period() DateRange               { return r.period }
func (r *Rental) TotalDays() int                  { return r.totalDays }
func (r *Rental) DailyRate() decimal.Decimal      { return r.dailyRate }
func (r *Rental) TotalAmount() decimal.Decimal    { return r.totalAmount }
func (r *Rental) DiscountCodeID() *uuid.UUID      { return r.discountCodeID }
func (r *Rental) DiscountAmount() decimal.Decimal { return r.discountAmount }
func (r *Rental) FinalAmount() decimal.Decimal    { return r.finalAmount }
func (r *Rental) Status() Status                  { return r.status }
func (r *Rental) StartMileage() *int              { return r.startMileage }
func (r *Rental) EndMileage() *int                { return r.endMileage }
func (r *Rental) CreatedAt() time.Time            { return r.createdAt }
func (r *Rental) UpdatedAt() time.Time            { return r.updatedAt }
