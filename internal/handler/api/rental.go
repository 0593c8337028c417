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

type RentalHandler struct {
	cmds commands.RentalCommands
	q    queries.RentalQueries
}

func NewRentalHandler(cmds commands.RentalCommands, q queries.RentalQueries) *RentalHandler {
	return &RentalHandler{cmds: cmds, q: q}
}

// @Summary Create rental
// @Description Book a car for a date range, optionally with a discount code
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body reqdto.CreateRentalRequest true "Create rental request"
// @Success 201 {object} resdto.RentalResponse
// @Failure 400 {object} httpresp.Envelope
// @Failure 404 {object} httpresp.Envelope
// @Router /rentals [post]
func (h *RentalHandler) CreateRental(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	var req reqdto.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httpresp.AbortWithError(c, http.StatusBadRequest, err, "Dates must be formatted as YYYY-MM-DD")
		return
	}

	view, err := h.cmds.CreateRental(c.Request.Context(), cmd, principal.ID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	writeRental(c, http.StatusCreated, "Rental booking created successfully", view)
}

// @Summary List my rentals
// @Description List the caller's rentals, newest first
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.RentalListResponse
// @Router /rentals/my-bookings [get]
func (h *RentalHandler) ListMyRentals(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var query reqdto.ListRentalsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}

	views, next, err := h.q.ListMyRentals(c.Request.Context(), principal, query.Status, cursorFrom(query.Cursor), query.Limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	writeRentalList(c, views, next)
}

// @Summary List fleet rentals
// @Description List rentals across all customers
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.RentalListResponse
// @Failure 403 {object} httpresp.Envelope
// @Router /rentals/owner/bookings [get]
func (h *RentalHandler) ListFleetRentals(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var query reqdto.ListRentalsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}

	views, next, err := h.q.ListFleetRentals(c.Request.Context(), principal, query.Status, cursorFrom(query.Cursor), query.Limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	writeRentalList(c, views, next)
}

// @Summary Get rental
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 404 {object} httpresp.Envelope
// @Router /rentals/{id} [get]
func (h *RentalHandler) GetRental(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParamOrAbort(c, "id", "rental")
	if !ok {
		return
	}

	view, err := h.q.GetRental(c.Request.Context(), principal, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	writeRental(c, http.StatusOK, "", view)
}

// @Summary Update rental status
// @Description Move a rental along pending, confirmed, active, completed or cancelled
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Param request body reqdto.UpdateRentalStatusRequest true "New status"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} httpresp.Envelope
// @Failure 404 {object} httpresp.Envelope
// @Router /rentals/{id}/status [patch]
func (h *RentalHandler) UpdateStatus(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParamOrAbort(c, "id", "rental")
	if !ok {
		return
	}
	var req reqdto.UpdateRentalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.cmds.UpdateStatus(c.Request.Context(), principal, id, req.Status)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	writeRental(c, http.StatusOK, "Rental status updated to "+view.Status, view)
}

// @Summary Return car
// @Description Complete an active rental and record the odometer reading
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Param request body reqdto.ReturnCarRequest true "End mileage"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} httpresp.Envelope
// @Failure 404 {object} httpresp.Envelope
// @Router /rentals/{id}/return [post]
func (h *RentalHandler) ReturnCar(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParamOrAbort(c, "id", "rental")
	if !ok {
		return
	}
	var req reqdto.ReturnCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.cmds.ReturnCar(c.Request.Context(), principal, id, *req.EndMileage)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	writeRental(c, http.StatusOK, "Car returned successfully", view)
}

func writeRental(c *gin.Context, status int, message string, view *queries.RentalView) {
	res, err := resdto.FromRentalView(view)
	if err != nil {
		httpresp.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	httpresp.OK(c, status, message, res)
}

func writeRentalList(c *gin.Context, views []*queries.RentalView, next *queries.Cursor) {
	res, err := resdto.FromRentalViews(views, next)
	if err != nil {
		httpresp.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	httpresp.OK(c, http.StatusOK, "", res)
}
