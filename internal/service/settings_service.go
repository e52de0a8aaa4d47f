package service

import (
	"context"
	"strings"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/port"
)

// UpdateSettingsInput is the DTO for editing invoice numbering settings.
type UpdateSettingsInput struct {
	Prefix     *string `json:"prefix"`
	NextNumber *int    `json:"next_number"`
}

// SettingsService manages the invoice numbering settings.
type SettingsService interface {
	Get(ctx context.Context) (domain.InvoiceSettings, error)
	Update(ctx context.Context, input UpdateSettingsInput) (domain.InvoiceSettings, error)
}

type settingsService struct {
	repo port.SettingsRepository
}

// NewSettingsService creates a new SettingsService implementation.
func NewSettingsService(repo port.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

func (s *settingsService) Get(ctx context.Context) (domain.InvoiceSettings, error) {
	return s.repo.Get(ctx)
}

func (s *settingsService) Update(ctx context.Context, input UpdateSettingsInput) (domain.InvoiceSettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return domain.InvoiceSettings{}, err
	}
	if input.Prefix != nil {
		settings.Prefix = strings.ToUpper(*input.Prefix)
	}
	if input.NextNumber != nil {
		settings.NextNumber = *input.NextNumber
	}
	return s.repo.Update(ctx, settings)
}
