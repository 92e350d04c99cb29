package api

import (
	"net/http"

	"vtcquote/internal/domain/pricing"
	"vtcquote/internal/domain/vehicle"
	reqdto "vtcquote/internal/handler/dto/request"
	resdto "vtcquote/internal/handler/dto/response"
	"vtcquote/internal/handler/middleware"
	"vtcquote/internal/pkg/errs"
	"vtcquote/internal/usecase/commands"
	"vtcquote/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VehicleHandler struct {
	commands commands.VehicleCommands
	queries  queries.VehicleQueries
}

func NewVehicleHandler(cmd commands.VehicleCommands, q queries.VehicleQueries) *VehicleHandler {
	return &VehicleHandler{commands: cmd, queries: q}
}

// @Summary List vehicles
// @Tags vehicles
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.VehicleResponse
// @Router /vehicles [get]
func (h *VehicleHandler) List(c *gin.Context) {
	driverID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.queries.ListByDriver(c.Request.Context(), driverID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	responses := make([]*resdto.VehicleResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, resdto.FromVehicleView(view))
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Get vehicle
// @Tags vehicles
// @Security BearerAuth
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} resdto.VehicleResponse
// @Failure 404 {object} map[string]string
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) Get(c *gin.Context) {
	driverID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle ID"})
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), driverID, vehicleID)
	if err != nil {
		if errs.Is(err, queries.ErrVehicleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromVehicleView(view))
}

// @Summary Create vehicle
// @Tags vehicles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.VehicleRequest true "Vehicle"
// @Success 201 {object} resdto.VehicleResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /vehicles [post]
func (h *VehicleHandler) Create(c *gin.Context) {
	driverID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		if errs.Is(err, pricing.ErrInvalidTimeOfDay) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time of day, expected HH:MM"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	view, err := h.commands.CreateVehicle(c.Request.Context(), driverID, input)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromVehicleView(view))
}

// @Summary Update vehicle
// @Tags vehicles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param request body reqdto.VehicleRequest true "Vehicle"
// @Success 200 {object} resdto.VehicleResponse
// @Failure 404 {object} map[string]string
// @Router /vehicles/{id} [put]
func (h *VehicleHandler) Update(c *gin.Context) {
	driverID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle ID"})
		return
	}

	var req reqdto.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time of day, expected HH:MM"})
		return
	}

	view, err := h.commands.UpdateVehicle(c.Request.Context(), driverID, vehicleID, input)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromVehicleView(view))
}

// @Summary Delete vehicle
// @Tags vehicles
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) Delete(c *gin.Context) {
	driverID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle ID"})
		return
	}

	if err := h.commands.DeleteVehicle(c.Request.Context(), driverID, vehicleID); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Activate or deactivate a vehicle
// @Tags vehicles
// @Security BearerAuth
// @Accept json
// @Param id path string true "Vehicle ID"
// @Param request body reqdto.SetVehicleActiveRequest true "Active flag"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /vehicles/{id}/active [patch]
func (h *VehicleHandler) SetActive(c *gin.Context) {
	driverID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle ID"})
		return
	}

	var req reqdto.SetVehicleActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.commands.SetVehicleActive(c.Request.Context(), driverID, vehicleID, *req.IsActive); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *VehicleHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrVehicleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
	case errs.Is(err, commands.ErrDomainValidation),
		errs.Is(err, vehicle.ErrEmptyVehicleName),
		errs.Is(err, vehicle.ErrVehicleNameTooLong),
		errs.Is(err, vehicle.ErrInvalidCapacity):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Vehicle validation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
