package shared

import (
	"context"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/discount"
	"car-rental/internal/domain/payment"
	"car-rental/internal/domain/rental"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within runs fn in one transaction. fn may be called again when the
	// database reports a serialization failure or deadlock, so it must not
	// have side effects outside tx.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads serves availability and discount checks outside a transaction.
	CommandReads() CommandReads
}

type Tx interface {
	Rentals() RentalRepository
	Cars() CarRepository
	Discounts() DiscountRepository
	Payments() PaymentRepository
	Customers() CustomerRepository
	Reads() CommandReads
}

// OverlapFinder reports whether carID has a rental in one of statuses whose
// dates intersect period.
type OverlapFinder interface {
	HasOverlap(ctx context.Context, carID uuid.UUID, period rental.DateRange, statuses []rental.Status) (bool, error)
}

type CommandReads interface {
	OverlapFinder
	DiscountByCode(ctx context.Context, code string) (*discount.Code, error)
}

type RentalRepository interface {
	OverlapFinder
	Create(ctx context.Context, r *rental.Rental) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, id uuid.UUID) (*rental.Rental, error)
	CarIDOf(ctx context.Context, rentalID uuid.UUID) (uuid.UUID, error)
	Save(ctx context.Context, r *rental.Rental) error
	CountForCar(ctx context.Context, carID uuid.UUID, statuses []rental.Status) (int64, error)
	DeleteForCar(ctx context.Context, carID uuid.UUID, statuses []rental.Status) (int64, error)
}

type CarRepository interface {
	// FindForUpdate locks the car row and returns it with its category's daily rate.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*car.Car, decimal.Decimal, error)
	Save(ctx context.Context, c *car.Car) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type DiscountRepository interface {
	FindByCodeForUpdate(ctx context.Context, code string) (*discount.Code, error)
	// IncrementUsage returns false when the usage limit was already reached.
	IncrementUsage(ctx context.Context, id uuid.UUID) (bool, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, id uuid.UUID) (*payment.Payment, error)
	RentalIDOf(ctx context.Context, paymentID uuid.UUID) (uuid.UUID, error)
	HasOpen(ctx context.Context, rentalID uuid.UUID) (bool, error)
	Save(ctx context.Context, p *payment.Payment) error
}

type CustomerRepository interface {
	UpdateLastLogin(ctx context.Context, customerID uuid.UUID) error
}
