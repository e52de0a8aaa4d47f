package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"go.uber.org/zap"

	"gstinvoice/internal/config"
	"gstinvoice/internal/domain"
	"gstinvoice/internal/port"
)

// RegisterFirmInput is the DTO for configuring the session's firm profile.
type RegisterFirmInput struct {
	FirmName   string `json:"firm_name"`
	HolderName string `json:"holder_name"`
	Email      string `json:"email"`
}

// UpdateFirmInput is the DTO for partial firm profile updates.
type UpdateFirmInput struct {
	FirmName   *string `json:"firm_name"`
	HolderName *string `json:"holder_name"`
	Email      *string `json:"email"`
}

// FirmService manages the session's firm profile and logo.
type FirmService interface {
	Get(ctx context.Context) (*domain.FirmProfile, error)
	Register(ctx context.Context, input RegisterFirmInput) (*domain.FirmProfile, error)
	Update(ctx context.Context, input UpdateFirmInput) (*domain.FirmProfile, error)
	SetLogo(ctx context.Context, data []byte, contentType string) (*domain.FirmProfile, error)
}

type firmService struct {
	repo   port.FirmRepository
	upload config.UploadConfig
	logger *zap.Logger
}

// NewFirmService creates a new FirmService implementation.
func NewFirmService(repo port.FirmRepository, upload config.UploadConfig, logger *zap.Logger) FirmService {
	return &firmService{repo: repo, upload: upload, logger: logger}
}

func (s *firmService) Get(ctx context.Context) (*domain.FirmProfile, error) {
	return s.repo.Get(ctx)
}

func (s *firmService) Register(ctx context.Context, input RegisterFirmInput) (*domain.FirmProfile, error) {
	if input.FirmName == "" || input.HolderName == "" || input.Email == "" {
		return nil, fmt.Errorf("%w: firm name, holder name and email are required", domain.ErrValidation)
	}
	profile := domain.FirmProfile{
		FirmName:   input.FirmName,
		HolderName: input.HolderName,
		Email:      input.Email,
	}
	if err := s.repo.Save(ctx, profile); err != nil {
		return nil, err
	}
	s.logger.Info("firm profile registered", zap.String("firm", profile.FirmName))
	return &profile, nil
}

func (s *firmService) Update(ctx context.Context, input UpdateFirmInput) (*domain.FirmProfile, error) {
	profile, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if input.FirmName != nil {
		profile.FirmName = *input.FirmName
	}
	if input.HolderName != nil {
		profile.HolderName = *input.HolderName
	}
	if input.Email != nil {
		profile.Email = *input.Email
	}
	if err := s.repo.Save(ctx, *profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// SetLogo converts an uploaded PNG/JPEG into a base64 data URL and stores
// it on the profile. Past invoices keep their own firm snapshot and are
// unaffected.
func (s *firmService) SetLogo(ctx context.Context, data []byte, contentType string) (*domain.FirmProfile, error) {
	if _, ok := domain.AllowedLogoTypes[contentType]; !ok {
		return nil, domain.ErrUnsupportedLogoType
	}
	if int64(len(data)) > s.upload.MaxLogoBytes() {
		return nil, domain.ErrLogoTooLarge
	}

	profile, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	profile.Logo = fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
	if err := s.repo.Save(ctx, *profile); err != nil {
		return nil, err
	}
	return profile, nil
}
