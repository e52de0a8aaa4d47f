package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gstinvoice/internal/service"
)

// SettingsHandler handles invoice numbering settings endpoints.
type SettingsHandler struct {
	service service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(svc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: svc}
}

// Get handles GET /api/v1/settings
// @Summary Get invoice numbering settings
// @Tags settings
// @Produce json
// @Success 200 {object} APIResponse{data=domain.InvoiceSettings}
// @Router /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.service.Get(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, settings)
}

// Update handles PUT /api/v1/settings
// @Summary Update invoice numbering settings
// @Description Updates the invoice number prefix and/or the next sequence number
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body service.UpdateSettingsInput true "Settings fields to update"
// @Success 200 {object} APIResponse{data=domain.InvoiceSettings}
// @Failure 400 {object} APIResponse
// @Router /settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var input service.UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	settings, err := h.service.Update(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, settings)
}
