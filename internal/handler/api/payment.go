package api

import (
	"net/http"

	reqdto "car-rental/internal/handler/dto/request"
	resdto "car-rental/internal/handler/dto/response"
	"car-rental/internal/handler/httpresp"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
	q    queries.PaymentQueries
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q}
}

// @Summary Process payment
// @Description Pay a pending or confirmed rental in full; a pending rental is confirmed
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body reqdto.ProcessPaymentRequest true "Payment request"
// @Success 201 {object} resdto.PaymentResponse
// @Failure 400 {object} httpresp.Envelope
// @Failure 404 {object} httpresp.Envelope
// @Failure 409 {object} httpresp.Envelope
// @Router /payments [post]
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.cmds.ProcessPayment(c.Request.Context(), req.ToCommand(), principal.ID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	writePayment(c, http.StatusCreated, "Payment processed successfully", view)
}

// @Summary Payment history
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.PaymentListResponse
// @Router /payments/history [get]
func (h *PaymentHandler) ListPaymentHistory(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var query reqdto.ListPaymentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}

	views, next, err := h.q.ListPaymentHistory(c.Request.Context(), principal, cursorFrom(query.Cursor), query.Limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromPaymentViews(views, next)
	if err != nil {
		httpresp.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	httpresp.OK(c, http.StatusOK, "", res)
}

// @Summary Get payment
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 404 {object} httpresp.Envelope
// @Router /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParamOrAbort(c, "id", "payment")
	if !ok {
		return
	}

	view, err := h.q.GetPayment(c.Request.Context(), principal, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	writePayment(c, http.StatusOK, "", view)
}

// @Summary Get payment by rental
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param rental_id path string true "Rental ID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 404 {object} httpresp.Envelope
// @Router /payments/rental/{rental_id} [get]
func (h *PaymentHandler) GetPaymentByRental(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	rentalID, ok := uuidParamOrAbort(c, "rental_id", "rental")
	if !ok {
		return
	}

	view, err := h.q.GetPaymentByRental(c.Request.Context(), principal, rentalID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	writePayment(c, http.StatusOK, "", view)
}

// @Summary Refund payment
// @Description Refund a completed payment and cancel its rental unless completed
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Param request body reqdto.RefundRequest false "Refund reason"
// @Success 200 {object} resdto.RefundResponse
// @Failure 400 {object} httpresp.Envelope
// @Failure 404 {object} httpresp.Envelope
// @Router /payments/{id}/refund [post]
func (h *PaymentHandler) ProcessRefund(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParamOrAbort(c, "id", "payment")
	if !ok {
		return
	}
	var req reqdto.RefundRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithBindError(c, err)
			return
		}
	}

	result, err := h.cmds.ProcessRefund(c.Request.Context(), principal, id, req.GetReason())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	httpresp.OK(c, http.StatusOK, "Refund processed successfully", resdto.FromRefundResult(result))
}

func writePayment(c *gin.Context, status int, message string, view *queries.PaymentView) {
	res, err := resdto.FromPaymentView(view)
	if err != nil {
		httpresp.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	httpresp.OK(c, status, message, res)
}
