// Package memory provides the in-memory repositories backing a single
// session. State lives for the process lifetime only; every repository
// guards its data with a mutex and hands out copies, never internal slices.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/port"
)

// InvoiceRepo stores invoices in creation order.
type InvoiceRepo struct {
	mu       sync.RWMutex
	invoices []domain.Invoice
}

// NewInvoiceRepo creates an empty invoice repository.
func NewInvoiceRepo() *InvoiceRepo {
	return &InvoiceRepo{}
}

var _ port.InvoiceRepository = (*InvoiceRepo)(nil)

func (r *InvoiceRepo) Append(_ context.Context, inv *domain.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invoices = append(r.invoices, *inv)
	return nil
}

func (r *InvoiceRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.invoices {
		if r.invoices[i].ID == id {
			inv := r.invoices[i]
			return &inv, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *InvoiceRepo) List(_ context.Context) ([]domain.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Invoice, len(r.invoices))
	copy(out, r.invoices)
	return out, nil
}

func (r *InvoiceRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.InvoiceStatus) (*domain.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.invoices {
		if r.invoices[i].ID == id {
			r.invoices[i].Status = status
			inv := r.invoices[i]
			return &inv, nil
		}
	}
	return nil, domain.ErrNotFound
}
