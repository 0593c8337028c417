//go:build unit

package api_test

import (
	"time"

	"car-rental/internal/domain/customer"
	"car-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// authenticateAs stands in for RequireAuth: any Authorization header
// authenticates the request as the given principal.
func authenticateAs(id uuid.UUID, role customer.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", id)
			c.Set("user_role", role)
		}
		c.Next()
	}
}

func rentalView(customerID uuid.UUID, status string) *queries.RentalView {
	created := time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)
	return &queries.RentalView{
		ID:             uuid.New(),
		CustomerID:     customerID,
		CustomerName:   "Test Customer",
		CustomerEmail:  "test@example.com",
		CarID:          uuid.New(),
		CarBrand:       "Toyota",
		CarModel:       "Corolla",
		LicensePlate:   "ABC-1234",
		CategoryName:   "Compact",
		BranchID:       uuid.New(),
		BranchName:     "Downtown",
		StartDate:      time.Date(2030, 6, 2, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2030, 6, 4, 0, 0, 0, 0, time.UTC),
		TotalDays:      2,
		DailyRate:      decimal.NewFromInt(35),
		TotalAmount:    decimal.NewFromInt(70),
		DiscountAmount: decimal.Zero,
		FinalAmount:    decimal.NewFromInt(70),
		Status:         status,
		CreatedAt:      created,
		UpdatedAt:      created,
	}
}
