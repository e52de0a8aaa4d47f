package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"gstinvoice/internal/service"
)

// FirmHandler handles firm profile endpoints.
type FirmHandler struct {
	firmService service.FirmService
}

// NewFirmHandler creates a new FirmHandler.
func NewFirmHandler(firmService service.FirmService) *FirmHandler {
	return &FirmHandler{firmService: firmService}
}

// Get handles GET /api/v1/firm
// @Summary Get the firm profile
// @Tags firm
// @Produce json
// @Success 200 {object} APIResponse{data=domain.FirmProfile}
// @Failure 409 {object} APIResponse "No firm profile configured"
// @Router /firm [get]
func (h *FirmHandler) Get(c *gin.Context) {
	profile, err := h.firmService.Get(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, profile)
}

// Register handles POST /api/v1/firm
// @Summary Configure the firm profile
// @Description Set the session's issuing firm; required before any invoice can be created
// @Tags firm
// @Accept json
// @Produce json
// @Param request body service.RegisterFirmInput true "Firm details"
// @Success 201 {object} APIResponse{data=domain.FirmProfile}
// @Failure 400 {object} APIResponse "Validation error"
// @Router /firm [post]
func (h *FirmHandler) Register(c *gin.Context) {
	var input service.RegisterFirmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	profile, err := h.firmService.Register(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, profile)
}

// Update handles PUT /api/v1/firm
// @Summary Update the firm profile
// @Description Partial update; invoices created earlier keep their firm snapshot
// @Tags firm
// @Accept json
// @Produce json
// @Param request body service.UpdateFirmInput true "Fields to update"
// @Success 200 {object} APIResponse{data=domain.FirmProfile}
// @Failure 409 {object} APIResponse "No firm profile configured"
// @Router /firm [put]
func (h *FirmHandler) Update(c *gin.Context) {
	var input service.UpdateFirmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	profile, err := h.firmService.Update(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, profile)
}

// UploadLogo handles POST /api/v1/firm/logo
// @Summary Upload the firm logo
// @Description Accepts a PNG or JPEG file and stores it as a data URL on the profile
// @Tags firm
// @Accept multipart/form-data
// @Produce json
// @Param logo formData file true "Logo image"
// @Success 200 {object} APIResponse{data=domain.FirmProfile}
// @Failure 400 {object} APIResponse "Unsupported logo type"
// @Failure 413 {object} APIResponse "Logo too large"
// @Router /firm/logo [post]
func (h *FirmHandler) UploadLogo(c *gin.Context) {
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "logo file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		HandleError(c, err)
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		HandleError(c, err)
		return
	}

	profile, err := h.firmService.SetLogo(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, profile)
}
