package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type RentalView struct {
	ID             uuid.UUID
	CustomerID     uuid.UUID
	CustomerName   string
	CustomerEmail  string
	CarID          uuid.UUID
	CarBrand       string
	CarModel       string
	LicensePlate   string
	CarImageURL    *string
	CategoryName   string
	BranchID       uuid.UUID
	BranchName     string
	StartDate      time.Time
	EndDate        time.Time
	TotalDays      int
	DailyRate      decimal.Decimal
	TotalAmount    decimal.Decimal
	DiscountCodeID *uuid.UUID
	DiscountCode   *string
	DiscountAmount decimal.Decimal
	FinalAmount    decimal.Decimal
	Status         string
	StartMileage   *int
	EndMileage     *int
	PaymentStatus  *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type PaymentView struct {
	ID            uuid.UUID
	RentalID      uuid.UUID
	CustomerID    uuid.UUID
	CarID         uuid.UUID
	CarBrand      string
	CarModel      string
	CarImageURL   *string
	CategoryName  string
	StartDate     time.Time
	EndDate       time.Time
	RentalStatus  string
	RentalAmount  decimal.Decimal
	Amount        decimal.Decimal
	PaymentMethod string
	PaymentStatus string
	TransactionID *string
	RefundReason  *string
	PaymentDate   time.Time
	CreatedAt     time.Time
}

type CarView struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	DailyRate    decimal.Decimal
	BranchID     uuid.UUID
	BranchName   string
	Brand        string
	Model        string
	Year         int
	Color        *string
	LicensePlate string
	ImageURL     *string
	Status       string
	Mileage      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type AvailabilityView struct {
	CarID     uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	CarStatus string
	Available bool
}

type DiscountView struct {
	Code              string
	DiscountType      string
	DiscountValue     decimal.Decimal
	MinRentalDays     int
	MaxDiscountAmount *decimal.Decimal
	ValidUntil        time.Time
	RentalDays        int
}

type AuthorizedCustomerView struct {
	ID          uuid.UUID
	Name        string
	Email       string
	Role        string
	Phone       *string
	IsActive    bool
	LastLoginAt *time.Time
}
