package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	CORS    CORSConfig
	Suggest SuggestConfig
	Invoice InvoiceConfig
	Upload  UploadConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SuggestConfig holds settings for the AI HSN/GST suggestion provider.
type SuggestConfig struct {
	Provider          string `mapstructure:"provider"`
	APIKey            string `mapstructure:"api_key"`
	Model             string `mapstructure:"model"`
	TimeoutSecs       int    `mapstructure:"timeout_secs"`
	MinDescriptionLen int    `mapstructure:"min_description_len"`
}

// Enabled reports whether suggestion requests may be issued at all.
func (s *SuggestConfig) Enabled() bool {
	return s.APIKey != ""
}

// InvoiceConfig holds defaults applied to new invoices.
type InvoiceConfig struct {
	DefaultPrefix  string  `mapstructure:"default_prefix"`
	DefaultGSTRate float64 `mapstructure:"default_gst_rate"`
	DueInDays      int     `mapstructure:"due_in_days"`
	DefaultTerms   string  `mapstructure:"default_terms"`
}

// UploadConfig holds firm logo upload limits.
type UploadConfig struct {
	MaxLogoSizeMB int64 `mapstructure:"max_logo_size_mb"`
}

// MaxLogoBytes returns the logo size limit in bytes.
func (u *UploadConfig) MaxLogoBytes() int64 {
	return u.MaxLogoSizeMB << 20
}

// Load reads configuration from environment variables with the GSTINV_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GSTINV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Suggestion provider defaults
	v.SetDefault("suggest.provider", "gemini")
	v.SetDefault("suggest.api_key", "")
	v.SetDefault("suggest.model", "")
	v.SetDefault("suggest.timeout_secs", 30)
	v.SetDefault("suggest.min_description_len", 3)

	// Invoice defaults
	v.SetDefault("invoice.default_prefix", "INV")
	v.SetDefault("invoice.default_gst_rate", 18)
	v.SetDefault("invoice.due_in_days", 15)
	v.SetDefault("invoice.default_terms", "Thank you for your business. Please make payment by the due date.")

	// Upload defaults
	v.SetDefault("upload.max_logo_size_mb", 1)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                 "GSTINV_SERVER_PORT",
		"server.read_timeout":         "GSTINV_SERVER_READ_TIMEOUT",
		"server.write_timeout":        "GSTINV_SERVER_WRITE_TIMEOUT",
		"server.environment":          "GSTINV_SERVER_ENVIRONMENT",
		"log.level":                   "GSTINV_LOG_LEVEL",
		"log.format":                  "GSTINV_LOG_FORMAT",
		"cors.allowed_origins":        "GSTINV_CORS_ALLOWED_ORIGINS",
		"suggest.provider":            "GSTINV_SUGGEST_PROVIDER",
		"suggest.api_key":             "GSTINV_SUGGEST_API_KEY",
		"suggest.model":               "GSTINV_SUGGEST_MODEL",
		"suggest.timeout_secs":        "GSTINV_SUGGEST_TIMEOUT_SECS",
		"suggest.min_description_len": "GSTINV_SUGGEST_MIN_DESCRIPTION_LEN",
		"invoice.default_prefix":      "GSTINV_INVOICE_DEFAULT_PREFIX",
		"invoice.default_gst_rate":    "GSTINV_INVOICE_DEFAULT_GST_RATE",
		"invoice.due_in_days":         "GSTINV_INVOICE_DUE_IN_DAYS",
		"invoice.default_terms":       "GSTINV_INVOICE_DEFAULT_TERMS",
		"upload.max_logo_size_mb":     "GSTINV_UPLOAD_MAX_LOGO_SIZE_MB",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if GSTINV_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("GSTINV_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Suggest = SuggestConfig{
		Provider:          v.GetString("suggest.provider"),
		APIKey:            v.GetString("suggest.api_key"),
		Model:             v.GetString("suggest.model"),
		TimeoutSecs:       v.GetInt("suggest.timeout_secs"),
		MinDescriptionLen: v.GetInt("suggest.min_description_len"),
	}
	cfg.Invoice = InvoiceConfig{
		DefaultPrefix:  v.GetString("invoice.default_prefix"),
		DefaultGSTRate: v.GetFloat64("invoice.default_gst_rate"),
		DueInDays:      v.GetInt("invoice.due_in_days"),
		DefaultTerms:   v.GetString("invoice.default_terms"),
	}
	cfg.Upload = UploadConfig{
		MaxLogoSizeMB: v.GetInt64("upload.max_logo_size_mb"),
	}

	return cfg, nil
}
