package api

import (
	"net/http"

	"vtcquote/internal/domain/client"
	reqdto "vtcquote/internal/handler/dto/request"
	resdto "vtcquote/internal/handler/dto/response"
	"vtcquote/internal/handler/middleware"
	"vtcquote/internal/pkg/errs"
	"vtcquote/internal/usecase/commands"
	"vtcquote/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClientHandler struct {
	commands commands.ClientCommands
	queries  queries.ClientQueries
}

func NewClientHandler(cmd commands.ClientCommands, q queries.ClientQueries) *ClientHandler {
	return &ClientHandler{commands: cmd, queries: q}
}

// @Summary List clients
// @Tags clients
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.ClientResponse
// @Router /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
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

	responses := make([]*resdto.ClientResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, resdto.FromClientView(view))
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Get client
// @Tags clients
// @Security BearerAuth
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} resdto.ClientResponse
// @Failure 404 {object} map[string]string
// @Router /clients/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	driverID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), driverID, clientID)
	if err != nil {
		if errs.Is(err, queries.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromClientView(view))
}

// @Summary Create client
// @Tags clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ClientRequest true "Client"
// @Success 201 {object} resdto.ClientResponse
// @Failure 400 {object} map[string]string
// @Router /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	driverID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.commands.CreateClient(c.Request.Context(), driverID, req.ToInput())
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromClientView(view))
}

// @Summary Update client
// @Tags clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param request body reqdto.ClientRequest true "Client"
// @Success 200 {object} resdto.ClientResponse
// @Failure 404 {object} map[string]string
// @Router /clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	driverID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
		return
	}

	var req reqdto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.commands.UpdateClient(c.Request.Context(), driverID, clientID, req.ToInput())
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromClientView(view))
}

// @Summary Delete client
// @Tags clients
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	driverID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
		return
	}

	if err := h.commands.DeleteClient(c.Request.Context(), driverID, clientID); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ClientHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrClientNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
	case errs.Is(err, commands.ErrDomainValidation),
		errs.Is(err, client.ErrEmptyClientName),
		errs.Is(err, client.ErrInvalidEmail):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Client validation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
