package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"car-rental/internal/domain/discount"
	"car-rental/internal/domain/rental"
	"car-rental/internal/handler/httpresp"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// errorMapping turns a usecase sentinel into a response. An empty message
// means the error's own text is safe to show.
type errorMapping struct {
	target  error
	status  int
	message string
}

// Order matters: marked errors match their mark before their cause.
var errorMappings = []errorMapping{
	{errs.ErrForbidden, http.StatusForbidden, "Insufficient permissions"},

	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrAuthenticationFailed, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrCustomerInactive, http.StatusForbidden, "Account is inactive"},
	{queries.ErrCustomerInactive, http.StatusForbidden, "Account is inactive"},
	{queries.ErrCustomerNotFound, http.StatusNotFound, "Customer not found"},

	{commands.ErrInvalidDates, http.StatusBadRequest, ""},
	{commands.ErrInvalidDiscount, http.StatusBadRequest, ""},
	{commands.ErrCarNotFound, http.StatusNotFound, "Car not found"},
	{queries.ErrCarNotFound, http.StatusNotFound, "Car not found"},
	{commands.ErrCarUnavailable, http.StatusBadRequest, "Car is not available for the selected dates"},
	{commands.ErrRentalNotFound, http.StatusNotFound, "Rental not found"},
	{queries.ErrRentalNotFound, http.StatusNotFound, "Rental not found"},
	{commands.ErrInvalidTransition, http.StatusBadRequest, ""},
	{commands.ErrInvalidRentalState, http.StatusBadRequest, ""},
	{commands.ErrInvalidMileage, http.StatusBadRequest, ""},
	{commands.ErrInvalidStatus, http.StatusBadRequest, ""},
	{queries.ErrInvalidStatusFilter, http.StatusBadRequest, "Invalid status filter"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},

	{commands.ErrInvalidPaymentMethod, http.StatusBadRequest, ""},
	{commands.ErrPaymentExists, http.StatusConflict, "Payment already exists for this rental"},
	{commands.ErrPaymentNotFound, http.StatusNotFound, "Payment not found"},
	{queries.ErrPaymentNotFound, http.StatusNotFound, "Payment not found"},
	{commands.ErrAlreadyRefunded, http.StatusBadRequest, "Payment already refunded"},
	{commands.ErrPaymentNotCompleted, http.StatusBadRequest, "Only completed payments can be refunded"},

	{commands.ErrInvalidCarStatus, http.StatusBadRequest, ""},
	{commands.ErrCarInUse, http.StatusConflict, "Car is currently rented"},
	{commands.ErrCarHasCommittedRentals, http.StatusConflict, "Car has confirmed or active rentals"},
	{commands.ErrCarHasRentalHistory, http.StatusConflict, "Car has rental history and cannot be deleted"},
	{commands.ErrInvalidCarPatch, http.StatusBadRequest, ""},
	{commands.ErrLicensePlateTaken, http.StatusConflict, "License plate already registered"},
	{commands.ErrInvalidCarReference, http.StatusBadRequest, "Unknown category or branch"},

	{discount.ErrNotFound, http.StatusNotFound, "Discount code not found"},
	{discount.ErrExpired, http.StatusBadRequest, ""},
	{discount.ErrUsageExceeded, http.StatusBadRequest, ""},
	{discount.ErrBelowMinimumDays, http.StatusBadRequest, ""},
	{discount.ErrEmptyCode, http.StatusBadRequest, ""},
	{queries.ErrInvalidRentalDays, http.StatusBadRequest, ""},
}

func abortWithUseCaseError(c *gin.Context, err error) {
	var transition *rental.TransitionError
	if errors.As(err, &transition) {
		msg := fmt.Sprintf("Cannot change status from %s to %s", transition.From, transition.To)
		httpresp.AbortWithError(c, http.StatusBadRequest, err, msg)
		return
	}

	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			msg := m.message
			if msg == "" {
				msg = capitalize(err.Error())
			}
			httpresp.AbortWithError(c, m.status, err, msg)
			return
		}
	}

	slog.Error("unhandled usecase error",
		"path", c.FullPath(),
		"error", err.Error(),
		"stack", errs.ExtractStackLines(err, 10))
	httpresp.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
}

func abortWithBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		httpresp.AbortWithError(c, http.StatusBadRequest, err,
			fmt.Sprintf("Invalid value for %s (%s)", toSnake(fe.Field()), fe.Tag()))
		return
	}
	httpresp.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && !(s[i-1] >= 'A' && s[i-1] <= 'Z') {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
