package port

import (
	"context"

	"github.com/google/uuid"

	"gstinvoice/internal/domain"
)

// InvoiceRepository stores the session's invoice history in creation order.
type InvoiceRepository interface {
	Append(ctx context.Context, inv *domain.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	// List returns a copy of the full history in creation order.
	List(ctx context.Context) ([]domain.Invoice, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) (*domain.Invoice, error)
}

// ClientRepository maintains the deduplicated client registry.
type ClientRepository interface {
	// RegisterIfAbsent appends a new client unless one with the same name
	// (case-insensitive) already exists. It returns the stored client and
	// whether a new record was created; repeat registrations never update
	// the stored address or email.
	RegisterIfAbsent(ctx context.Context, name, address, email string) (*domain.Client, bool, error)
	List(ctx context.Context) ([]domain.Client, error)
}

// SettingsRepository holds the process-wide invoice numbering settings.
type SettingsRepository interface {
	Get(ctx context.Context) (domain.InvoiceSettings, error)
	Update(ctx context.Context, settings domain.InvoiceSettings) (domain.InvoiceSettings, error)
	// Consume returns the current prefix and counter and advances the
	// counter by exactly one, atomically. Each returned counter value is
	// handed out at most once per session.
	Consume(ctx context.Context) (prefix string, counter int, err error)
}

// FirmRepository holds the session's firm profile.
type FirmRepository interface {
	// Get returns the profile, or domain.ErrNoFirmProfile when none is set.
	Get(ctx context.Context) (*domain.FirmProfile, error)
	Save(ctx context.Context, profile domain.FirmProfile) error
}
