package memory

import (
	"context"
	"sync"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/port"
)

// FirmRepo holds the session's firm profile, if one has been configured.
type FirmRepo struct {
	mu      sync.RWMutex
	profile *domain.FirmProfile
}

// NewFirmRepo creates a repository with no profile configured.
func NewFirmRepo() *FirmRepo {
	return &FirmRepo{}
}

var _ port.FirmRepository = (*FirmRepo)(nil)

func (r *FirmRepo) Get(_ context.Context) (*domain.FirmProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.profile == nil {
		return nil, domain.ErrNoFirmProfile
	}
	profile := *r.profile
	return &profile, nil
}

func (r *FirmRepo) Save(_ context.Context, profile domain.FirmProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = &profile
	return nil
}
