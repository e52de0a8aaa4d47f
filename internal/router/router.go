package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gstinvoice/internal/config"
	"gstinvoice/internal/handler"
	"gstinvoice/internal/middleware"
)

// Handlers bundles the HTTP handlers wired into the router.
type Handlers struct {
	Health   *handler.HealthHandler
	Firm     *handler.FirmHandler
	Invoice  *handler.InvoiceHandler
	Client   *handler.ClientHandler
	Settings *handler.SettingsHandler
	Suggest  *handler.SuggestHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, logger *zap.Logger, h Handlers) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(&cfg.CORS))

	// Health check
	r.GET("/healthz", h.Health.Liveness)

	v1 := r.Group("/api/v1")

	// Firm profile
	firm := v1.Group("/firm")
	firm.POST("", h.Firm.Register)
	firm.GET("", h.Firm.Get)
	firm.PUT("", h.Firm.Update)
	firm.POST("/logo", h.Firm.UploadLogo)

	// Invoices
	invoices := v1.Group("/invoices")
	invoices.POST("", h.Invoice.Create)
	invoices.GET("", h.Invoice.List)
	invoices.GET("/export", h.Invoice.Export)
	invoices.POST("/preview", h.Invoice.Preview)
	invoices.GET("/:id", h.Invoice.GetByID)
	invoices.PATCH("/:id/status", h.Invoice.UpdateStatus)

	// Known items and clients derived from invoice history
	v1.GET("/items", h.Invoice.KnownItems)
	v1.GET("/clients", h.Client.List)

	// Invoice numbering settings
	v1.GET("/settings", h.Settings.Get)
	v1.PUT("/settings", h.Settings.Update)

	// AI suggestions
	v1.POST("/suggest", h.Suggest.Suggest)

	return r
}
