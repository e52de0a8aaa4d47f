package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"gstinvoice/internal/config"
	"gstinvoice/internal/handler"
	"gstinvoice/internal/port"
	"gstinvoice/internal/repository/memory"
	"gstinvoice/internal/router"
	"gstinvoice/internal/service"
	"gstinvoice/internal/suggest"
	"gstinvoice/internal/suggest/gemini"
	"gstinvoice/internal/suggest/openai"
	"gstinvoice/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer zlog.Sync() //nolint:errcheck

	// Initialize repositories (memory-backed, state lives for the process)
	invoiceRepo := memory.NewInvoiceRepo()
	clientRepo := memory.NewClientRepo()
	settingsRepo := memory.NewSettingsRepo(cfg.Invoice.DefaultPrefix)
	firmRepo := memory.NewFirmRepo()

	// Initialize suggestion provider
	suggest.Register("gemini", func(c *config.SuggestConfig) (port.Suggester, error) {
		return gemini.New(c), nil
	})
	suggest.Register("openai", func(c *config.SuggestConfig) (port.Suggester, error) {
		return openai.New(c), nil
	})

	var suggester port.Suggester
	if cfg.Suggest.Enabled() {
		suggester, err = suggest.New(&cfg.Suggest)
		if err != nil {
			return fmt.Errorf("failed to initialize suggestion provider: %w", err)
		}
		zlog.Info("suggestion provider ready", zap.String("provider", cfg.Suggest.Provider))
	} else {
		zlog.Info("suggestion provider disabled, no API key configured")
	}

	// Initialize services
	invoiceSvc := service.NewInvoiceService(invoiceRepo, clientRepo, settingsRepo, firmRepo, cfg.Invoice, zlog)
	firmSvc := service.NewFirmService(firmRepo, cfg.Upload, zlog)
	settingsSvc := service.NewSettingsService(settingsRepo)
	suggestionSvc := service.NewSuggestionService(suggester, cfg.Suggest, zlog)

	// Initialize handlers
	h := router.Handlers{
		Health:   handler.NewHealthHandler(),
		Firm:     handler.NewFirmHandler(firmSvc),
		Invoice:  handler.NewInvoiceHandler(invoiceSvc),
		Client:   handler.NewClientHandler(clientRepo),
		Settings: handler.NewSettingsHandler(settingsSvc),
		Suggest:  handler.NewSuggestHandler(suggestionSvc),
	}

	r := router.Setup(cfg, zlog, h)

	zlog.Info("server starting", zap.String("addr", cfg.Server.Port))
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
