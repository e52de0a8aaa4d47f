package handler

import (
	"github.com/gin-gonic/gin"

	"gstinvoice/internal/port"
)

// ClientHandler handles client registry endpoints.
type ClientHandler struct {
	clients port.ClientRepository
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clients port.ClientRepository) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// List handles GET /api/v1/clients
// @Summary List known clients
// @Description Clients registered automatically from invoice history, in first-seen order
// @Tags clients
// @Produce json
// @Success 200 {object} APIResponse{data=[]domain.Client}
// @Router /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clients.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondList(c, clients, len(clients))
}
