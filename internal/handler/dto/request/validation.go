package request

import (
	"regexp"
	"time"

	"car-rental/internal/domain/rental"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var codePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,50}$`)

// RegisterValidators adds the custom binding tags used by the request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("calendar_date", isCalendarDate); err != nil {
		return err
	}
	return v.RegisterValidation("upper_code", isCode)
}

func isCalendarDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(rental.DateLayout, fl.Field().String())
	return err == nil
}

// Codes are compared upper-cased, so either case is accepted on input.
func isCode(fl validator.FieldLevel) bool {
	return codePattern.MatchString(fl.Field().String())
}
