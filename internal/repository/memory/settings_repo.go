package memory

import (
	"context"
	"fmt"
	"sync"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/port"
)

// SettingsRepo holds the numbering settings. Counters start at 1 and only
// move forward via Consume or an explicit Update.
type SettingsRepo struct {
	mu       sync.Mutex
	settings domain.InvoiceSettings
}

// NewSettingsRepo creates the settings with the given default prefix and
// the counter at 1.
func NewSettingsRepo(defaultPrefix string) *SettingsRepo {
	return &SettingsRepo{
		settings: domain.InvoiceSettings{Prefix: defaultPrefix, NextNumber: 1},
	}
}

var _ port.SettingsRepository = (*SettingsRepo)(nil)

func (r *SettingsRepo) Get(_ context.Context) (domain.InvoiceSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.settings, nil
}

func (r *SettingsRepo) Update(_ context.Context, settings domain.InvoiceSettings) (domain.InvoiceSettings, error) {
	if settings.Prefix == "" {
		return domain.InvoiceSettings{}, fmt.Errorf("%w: prefix must not be empty", domain.ErrInvalidSettings)
	}
	if settings.NextNumber < 1 {
		return domain.InvoiceSettings{}, fmt.Errorf("%w: next number must be at least 1", domain.ErrInvalidSettings)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = settings
	return r.settings, nil
}

func (r *SettingsRepo) Consume(_ context.Context) (string, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prefix, counter := r.settings.Prefix, r.settings.NextNumber
	r.settings.NextNumber++
	return prefix, counter, nil
}
