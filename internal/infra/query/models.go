package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Customer struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Phone        pgtype.Text
	IsActive     bool
	LastLoginAt  pgtype.Timestamptz
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type Car struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	BranchID     uuid.UUID
	Brand        string
	Model        string
	Year         int32
	Color        pgtype.Text
	LicensePlate string
	ImageUrl     pgtype.Text
	Status       string
	Mileage      int32
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type DiscountCode struct {
	ID                uuid.UUID
	Code              string
	DiscountType      string
	DiscountValue     pgtype.Numeric
	MinRentalDays     int32
	MaxDiscountAmount pgtype.Numeric
	ValidFrom         pgtype.Date
	ValidUntil        pgtype.Date
	UsageLimit        pgtype.Int4
	TimesUsed         int32
	IsActive          bool
	CreatedAt         pgtype.Timestamptz
}

type Rental struct {
	ID             uuid.UUID
	CustomerID     uuid.UUID
	CarID          uuid.UUID
	BranchID       uuid.UUID
	StartDate      pgtype.Date
	EndDate        pgtype.Date
	TotalDays      int32
	DailyRate      pgtype.Numeric
	TotalAmount    pgtype.Numeric
	DiscountCodeID pgtype.UUID
	DiscountAmount pgtype.Numeric
	FinalAmount    pgtype.Numeric
	Status         string
	StartMileage   pgtype.Int4
	EndMileage     pgtype.Int4
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

type Payment struct {
	ID            uuid.UUID
	RentalID      uuid.UUID
	Amount        pgtype.Numeric
	PaymentMethod string
	PaymentStatus string
	TransactionID pgtype.Text
	RefundReason  pgtype.Text
	PaymentDate   pgtype.Timestamptz
	CreatedAt     pgtype.Timestamptz
}
