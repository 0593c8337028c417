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

type CarHandler struct {
	cmds commands.CarCommands
	q    queries.CarQueries
}

func NewCarHandler(cmds commands.CarCommands, q queries.CarQueries) *CarHandler {
	return &CarHandler{cmds: cmds, q: q}
}

// @Summary Get car
// @Tags cars
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} resdto.CarResponse
// @Failure 404 {object} httpresp.Envelope
// @Router /cars/{id} [get]
func (h *CarHandler) GetCar(c *gin.Context) {
	id, ok := uuidParamOrAbort(c, "id", "car")
	if !ok {
		return
	}

	view, err := h.q.GetCar(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	writeCar(c, "", view)
}

// @Summary Check availability
// @Description Whether the car is free for [start_date, end_date)
// @Tags cars
// @Produce json
// @Param id path string true "Car ID"
// @Param start_date query string true "YYYY-MM-DD"
// @Param end_date query string true "YYYY-MM-DD"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httpresp.Envelope
// @Failure 404 {object} httpresp.Envelope
// @Router /cars/{id}/availability [get]
func (h *CarHandler) CheckAvailability(c *gin.Context) {
	id, ok := uuidParamOrAbort(c, "id", "car")
	if !ok {
		return
	}
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}
	period, err := query.ToDomain()
	if err != nil {
		httpresp.AbortWithError(c, http.StatusBadRequest, err, capitalize(err.Error()))
		return
	}

	view, err := h.q.CheckAvailability(c.Request.Context(), id, period)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromAvailabilityView(view)
	if err != nil {
		httpresp.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	httpresp.OK(c, http.StatusOK, "", res)
}

// @Summary Update car
// @Description Partially update the car's descriptive fields
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Param request body reqdto.UpdateCarRequest true "Fields to change"
// @Success 200 {object} resdto.CarResponse
// @Failure 400 {object} httpresp.Envelope
// @Failure 404 {object} httpresp.Envelope
// @Failure 409 {object} httpresp.Envelope
// @Router /cars/{id} [patch]
func (h *CarHandler) UpdateCar(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParamOrAbort(c, "id", "car")
	if !ok {
		return
	}
	var req reqdto.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.cmds.UpdateCar(c.Request.Context(), principal, id, req.ToDomain())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	writeCar(c, "Car updated successfully", view)
}

// @Summary Update car status
// @Description Switch the car between available, maintenance and unavailable
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Param request body reqdto.UpdateCarStatusRequest true "New status"
// @Success 200 {object} resdto.CarResponse
// @Failure 400 {object} httpresp.Envelope
// @Failure 404 {object} httpresp.Envelope
// @Failure 409 {object} httpresp.Envelope
// @Router /cars/{id}/availability [patch]
func (h *CarHandler) UpdateCarStatus(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParamOrAbort(c, "id", "car")
	if !ok {
		return
	}
	var req reqdto.UpdateCarStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.cmds.UpdateCarStatus(c.Request.Context(), principal, id, req.Status)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	writeCar(c, "Car status updated to "+view.Status, view)
}

// @Summary Delete car
// @Description Delete a car with no committed or historical rentals
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Success 200 {object} httpresp.Envelope
// @Failure 404 {object} httpresp.Envelope
// @Failure 409 {object} httpresp.Envelope
// @Router /cars/{id} [delete]
func (h *CarHandler) DeleteCar(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParamOrAbort(c, "id", "car")
	if !ok {
		return
	}

	if err := h.cmds.DeleteCar(c.Request.Context(), principal, id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	httpresp.OK(c, http.StatusOK, "Car deleted successfully", nil)
}

func writeCar(c *gin.Context, message string, view *queries.CarView) {
	res, err := resdto.FromCarView(view)
	if err != nil {
		httpresp.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	httpresp.OK(c, http.StatusOK, message, res)
}
