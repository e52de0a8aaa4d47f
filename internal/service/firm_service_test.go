package service_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gstinvoice/internal/config"
	"gstinvoice/internal/domain"
	"gstinvoice/internal/repository/memory"
	"gstinvoice/internal/service"
)

func newFirmService() (service.FirmService, *memory.FirmRepo) {
	repo := memory.NewFirmRepo()
	svc := service.NewFirmService(repo, config.UploadConfig{MaxLogoSizeMB: 1}, zap.NewNop())
	return svc, repo
}

func TestFirmRegister(t *testing.T) {
	svc, _ := newFirmService()
	ctx := context.Background()

	profile, err := svc.Register(ctx, service.RegisterFirmInput{
		FirmName:   "Sharma Traders",
		HolderName: "R. Sharma",
		Email:      "rs@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sharma Traders", profile.FirmName)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "R. Sharma", got.HolderName)
}

func TestFirmRegister_RequiresAllFields(t *testing.T) {
	svc, _ := newFirmService()

	_, err := svc.Register(context.Background(), service.RegisterFirmInput{FirmName: "Sharma Traders"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFirmGet_BeforeRegister(t *testing.T) {
	svc, _ := newFirmService()

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoFirmProfile)
}

func TestFirmUpdate_Partial(t *testing.T) {
	svc, _ := newFirmService()
	ctx := context.Background()

	_, err := svc.Register(ctx, service.RegisterFirmInput{
		FirmName:   "Sharma Traders",
		HolderName: "R. Sharma",
		Email:      "rs@example.com",
	})
	require.NoError(t, err)

	newEmail := "accounts@example.com"
	profile, err := svc.Update(ctx, service.UpdateFirmInput{Email: &newEmail})
	require.NoError(t, err)
	assert.Equal(t, "accounts@example.com", profile.Email)
	assert.Equal(t, "Sharma Traders", profile.FirmName)
	assert.Equal(t, "R. Sharma", profile.HolderName)
}

func TestFirmUpdate_WithoutProfile(t *testing.T) {
	svc, _ := newFirmService()

	name := "New Name"
	_, err := svc.Update(context.Background(), service.UpdateFirmInput{FirmName: &name})
	assert.ErrorIs(t, err, domain.ErrNoFirmProfile)
}

func TestSetLogo(t *testing.T) {
	svc, _ := newFirmService()
	ctx := context.Background()

	_, err := svc.Register(ctx, service.RegisterFirmInput{
		FirmName:   "Sharma Traders",
		HolderName: "R. Sharma",
		Email:      "rs@example.com",
	})
	require.NoError(t, err)

	profile, err := svc.SetLogo(ctx, []byte{0x89, 0x50, 0x4E, 0x47}, "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(profile.Logo, "data:image/png;base64,"))
}

func TestSetLogo_UnsupportedType(t *testing.T) {
	svc, _ := newFirmService()

	_, err := svc.SetLogo(context.Background(), []byte("gif89a"), "image/gif")
	assert.ErrorIs(t, err, domain.ErrUnsupportedLogoType)
}

func TestSetLogo_TooLarge(t *testing.T) {
	svc, _ := newFirmService()

	oversized := bytes.Repeat([]byte{0xFF}, 1<<20+1)
	_, err := svc.SetLogo(context.Background(), oversized, "image/jpeg")
	assert.ErrorIs(t, err, domain.ErrLogoTooLarge)
}
