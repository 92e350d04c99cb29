package api

import (
	"fmt"
	"net/http"

	reqdto "vtcquote/internal/handler/dto/request"
	resdto "vtcquote/internal/handler/dto/response"
	"vtcquote/internal/handler/middleware"
	"vtcquote/internal/pkg/errs"
	"vtcquote/internal/usecase/commands"
	"vtcquote/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuoteHandler struct {
	commands commands.QuoteCommands
	queries  queries.QuoteQueries
}

func NewQuoteHandler(cmd commands.QuoteCommands, q queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{commands: cmd, queries: q}
}

// @Summary Estimate a trip price
// @Description Public endpoint for the booking widget. Prices a trip without persisting anything.
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body reqdto.EstimateRequest true "Trip to price"
// @Success 200 {object} resdto.EstimateResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /quotes/estimate [post]
func (h *QuoteHandler) Estimate(c *gin.Context) {
	var req reqdto.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.commands.Estimate(c.Request.Context(), commands.EstimateInput{
		VehicleID: req.VehicleID,
		Trip:      req.Trip.ToInput(),
	})
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.EstimateResponse{
		OutboundDistanceKm:  result.Trip.OutboundDistanceKm,
		OutboundDurationMin: result.Trip.OutboundDurationMin,
		ReturnDistanceKm:    result.Trip.ReturnDistanceKm,
		ReturnDurationMin:   result.Trip.ReturnDurationMin,
		Breakdown:           resdto.FromBreakdown(result.Breakdown),
	})
}

// @Summary Create quote
// @Description Price the trip and persist it as a draft quote.
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateQuoteRequest true "Quote"
// @Success 201 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	driverID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.commands.CreateQuote(c.Request.Context(), driverID, commands.CreateQuoteInput{
		VehicleID: req.VehicleID,
		ClientID:  req.ClientID,
		Trip:      req.Trip.ToInput(),
	})
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromQuoteView(view))
}

// @Summary List quotes
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.QuoteListResponse
// @Router /quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	driverID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	items, err := h.queries.ListByDriver(c.Request.Context(), driverID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	responses := make([]*resdto.QuoteListResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, resdto.FromQuoteListItem(item))
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Get quote
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 404 {object} map[string]string
// @Router /quotes/{id} [get]
func (h *QuoteHandler) Get(c *gin.Context) {
	driverID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quote ID"})
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), driverID, quoteID)
	if err != nil {
		if errs.Is(err, queries.ErrQuoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary Update quote status
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param request body reqdto.UpdateQuoteStatusRequest true "New status"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /quotes/{id}/status [patch]
func (h *QuoteHandler) UpdateStatus(c *gin.Context) {
	driverID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quote ID"})
		return
	}

	var req reqdto.UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.commands.UpdateStatus(c.Request.Context(), driverID, quoteID, req.Status)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary Delete quote
// @Tags quotes
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /quotes/{id} [delete]
func (h *QuoteHandler) Delete(c *gin.Context) {
	driverID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quote ID"})
		return
	}

	if err := h.commands.DeleteQuote(c.Request.Context(), driverID, quoteID); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Download quote PDF
// @Tags quotes
// @Security BearerAuth
// @Produce application/pdf
// @Param id path string true "Quote ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /quotes/{id}/pdf [get]
func (h *QuoteHandler) DownloadPDF(c *gin.Context) {
	driverID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quote ID"})
		return
	}

	pdf, err := h.commands.RenderPDF(c.Request.Context(), driverID, quoteID)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="devis-%s.pdf"`, quoteID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// @Summary Email quote to client
// @Tags quotes
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /quotes/{id}/send [post]
func (h *QuoteHandler) Send(c *gin.Context) {
	driverID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quote ID"})
		return
	}

	if err := h.commands.SendQuote(c.Request.Context(), driverID, quoteID); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *QuoteHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrQuoteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
	case errs.Is(err, commands.ErrVehicleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
	case errs.Is(err, commands.ErrClientNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
	case errs.Is(err, commands.ErrRouteUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Route could not be resolved"})
	case errs.Is(err, commands.ErrInvalidStatusTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "Invalid status transition"})
	case errs.Is(err, commands.ErrQuoteMissingClientEmail):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Quote has no client email"})
	case errs.Is(err, commands.ErrDomainValidation),
		errs.Is(err, commands.ErrInvalidPricingProfile):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Quote validation failed"})
	case errs.Is(err, commands.ErrQuoteDeliveryFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Quote delivery failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
