// Package suggest holds the AI HSN/GST suggestion adapter: a prompt, a
// declared response schema, and a provider registry. Providers live in
// subpackages and are registered by the composition root.
package suggest

import (
	"fmt"

	"gstinvoice/internal/config"
	"gstinvoice/internal/port"
)

// ProviderFactory creates a Suggester from the suggestion config.
type ProviderFactory func(cfg *config.SuggestConfig) (port.Suggester, error)

var providers = map[string]ProviderFactory{}

// Register registers a provider factory by name.
func Register(name string, factory ProviderFactory) {
	providers[name] = factory
}

// New creates a Suggester for the configured provider.
func New(cfg *config.SuggestConfig) (port.Suggester, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown suggestion provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
