package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gstinvoice/internal/service"
)

// SuggestHandler handles HSN code and GST rate suggestion requests.
type SuggestHandler struct {
	service service.SuggestionService
}

// NewSuggestHandler creates a new SuggestHandler.
func NewSuggestHandler(svc service.SuggestionService) *SuggestHandler {
	return &SuggestHandler{service: svc}
}

type suggestRequest struct {
	ItemID      string `json:"item_id" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// Suggest handles POST /api/v1/suggest
// @Summary Suggest an HSN code and GST rate for an item description
// @Description Asks the configured AI provider for the most likely 8-digit HSN code,
// @Description GST rate and a confidence score. Only the latest request per item wins.
// @Tags suggest
// @Accept json
// @Produce json
// @Param request body suggestRequest true "Item identifier and description"
// @Success 200 {object} APIResponse{data=domain.Suggestion}
// @Failure 409 {object} APIResponse
// @Failure 503 {object} APIResponse
// @Router /suggest [post]
func (h *SuggestHandler) Suggest(c *gin.Context) {
	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "item_id and description are required")
		return
	}

	suggestion, err := h.service.Suggest(c.Request.Context(), req.ItemID, req.Description)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, suggestion)
}
