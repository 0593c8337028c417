package request

type ValidateDiscountQuery struct {
	Code       string `form:"code" binding:"required,upper_code"`
	RentalDays int    `form:"rental_days,default=1" binding:"min=1"`
}
