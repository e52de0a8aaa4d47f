package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *ListMeta   `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListMeta holds list metadata.
type ListMeta struct {
	Total int `json:"total"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondList sends a 200 success response with list metadata.
func RespondList(c *gin.Context, data interface{}, total int) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &ListMeta{Total: total}})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error
// codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrNoFirmProfile):
		return http.StatusConflict, "NO_FIRM_PROFILE", "configure the firm profile before creating invoices"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "VALIDATION_ERROR", err.Error()
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest, "INVALID_STATUS", "status must be one of Draft, Delivered, Payment Pending, Paid"
	case errors.Is(err, domain.ErrInvalidSettings):
		return http.StatusBadRequest, "INVALID_SETTINGS", err.Error()
	case errors.Is(err, domain.ErrUnsupportedLogoType):
		return http.StatusBadRequest, "UNSUPPORTED_LOGO_TYPE", "logo must be a PNG or JPEG image"
	case errors.Is(err, domain.ErrLogoTooLarge):
		return http.StatusRequestEntityTooLarge, "LOGO_TOO_LARGE", "logo exceeds maximum allowed size"
	case errors.Is(err, domain.ErrSuggestionStale):
		return http.StatusConflict, "SUGGESTION_STALE", "a newer suggestion request superseded this one"
	case errors.Is(err, domain.ErrSuggestionUnavailable):
		return http.StatusServiceUnavailable, "SUGGESTION_UNAVAILABLE", "suggestion unavailable"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		middleware.RequestLogger(c).Error("internal error", zap.Error(err))
	}
	RespondError(c, status, code, msg)
}
