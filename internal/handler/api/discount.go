package api

import (
	"net/http"

	reqdto "car-rental/internal/handler/dto/request"
	resdto "car-rental/internal/handler/dto/response"
	"car-rental/internal/handler/httpresp"
	"car-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DiscountHandler struct {
	q queries.DiscountQueries
}

func NewDiscountHandler(q queries.DiscountQueries) *DiscountHandler {
	return &DiscountHandler{q: q}
}

// @Summary Validate discount code
// @Description Check a code against today's date and a rental length without using it
// @Tags discounts
// @Produce json
// @Param code query string true "Discount code"
// @Param rental_days query int false "Rental length in days" default(1)
// @Success 200 {object} resdto.DiscountResponse
// @Failure 400 {object} httpresp.Envelope
// @Failure 404 {object} httpresp.Envelope
// @Router /discounts/validate [get]
func (h *DiscountHandler) Validate(c *gin.Context) {
	var query reqdto.ValidateDiscountQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.q.ValidateDiscount(c.Request.Context(), query.Code, query.RentalDays)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromDiscountView(view)
	if err != nil {
		httpresp.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	httpresp.OK(c, http.StatusOK, "Discount code is valid", res)
}
