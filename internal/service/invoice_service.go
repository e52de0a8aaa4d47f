package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gstinvoice/internal/catalog"
	"gstinvoice/internal/config"
	"gstinvoice/internal/domain"
	"gstinvoice/internal/money"
	"gstinvoice/internal/numbering"
	"gstinvoice/internal/port"
	"gstinvoice/internal/query"
)

// LineItemInput is the DTO for a line item on a new invoice. A nil GSTRate
// takes the configured default rate.
type LineItemInput struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Quantity    float64  `json:"quantity"`
	UnitPrice   float64  `json:"unit_price"`
	HSNCode     string   `json:"hsn_code"`
	GSTRate     *float64 `json:"gst_rate"`
}

// CreateInvoiceInput is the DTO for creating an invoice. Zero dates take
// the configured defaults (today, today+due_in_days).
type CreateInvoiceInput struct {
	ClientName    string          `json:"client_name"`
	ClientAddress string          `json:"client_address"`
	ClientEmail   string          `json:"client_email"`
	Date          domain.Date     `json:"date"`
	DueDate       domain.Date     `json:"due_date"`
	LineItems     []LineItemInput `json:"line_items"`
	Notes         string          `json:"notes"`
	Terms         string          `json:"terms"`
	Discount      domain.Discount `json:"discount"`
}

// InvoiceListEntry is one row of the invoice list view, with the computed
// grand total for the Amount column.
type InvoiceListEntry struct {
	domain.Invoice
	Amount float64 `json:"amount"`
}

// InvoiceService defines the invoice lifecycle contract.
type InvoiceService interface {
	Create(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, filter query.Filter, sort query.Sort) ([]InvoiceListEntry, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) (*domain.Invoice, error)
	KnownItems(ctx context.Context) ([]catalog.KnownItem, error)
	Preview(items []LineItemInput, discount domain.Discount) money.Breakdown
}

type invoiceService struct {
	invoices port.InvoiceRepository
	clients  port.ClientRepository
	settings port.SettingsRepository
	firm     port.FirmRepository
	cfg      config.InvoiceConfig
	logger   *zap.Logger
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	invoices port.InvoiceRepository,
	clients port.ClientRepository,
	settings port.SettingsRepository,
	firm port.FirmRepository,
	cfg config.InvoiceConfig,
	logger *zap.Logger,
) InvoiceService {
	return &invoiceService{
		invoices: invoices,
		clients:  clients,
		settings: settings,
		firm:     firm,
		cfg:      cfg,
		logger:   logger,
	}
}

func (s *invoiceService) Create(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error) {
	// Precondition, not validation: an invoice cannot exist without an
	// issuing firm to snapshot.
	firm, err := s.firm.Get(ctx)
	if err != nil {
		return nil, err
	}

	if err := validateCreateInput(&input); err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = domain.Today()
	}
	dueDate := input.DueDate
	if dueDate.IsZero() {
		dueDate = date.AddDays(s.cfg.DueInDays)
	}
	terms := input.Terms
	if terms == "" {
		terms = s.cfg.DefaultTerms
	}
	discount := input.Discount
	if discount.Type == "" {
		discount.Type = domain.DiscountPercentage
	}

	// Validation happened above, so a consumed number is always used.
	prefix, counter, err := s.settings.Consume(ctx)
	if err != nil {
		return nil, err
	}

	inv := &domain.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: numbering.Format(prefix, counter),
		ClientName:    input.ClientName,
		ClientAddress: input.ClientAddress,
		ClientEmail:   input.ClientEmail,
		Date:          date,
		DueDate:       dueDate,
		Status:        domain.StatusDraft,
		LineItems:     s.buildLineItems(input.LineItems),
		FirmDetails:   *firm,
		Notes:         input.Notes,
		Terms:         terms,
		Discount:      discount,
		CreatedAt:     time.Now(),
	}

	if err := s.invoices.Append(ctx, inv); err != nil {
		return nil, err
	}

	if _, created, err := s.clients.RegisterIfAbsent(ctx, inv.ClientName, inv.ClientAddress, inv.ClientEmail); err != nil {
		return nil, err
	} else if created {
		s.logger.Info("registered new client", zap.String("name", inv.ClientName))
	}

	s.logger.Info("invoice created",
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.String("client", inv.ClientName))
	return inv, nil
}

func (s *invoiceService) buildLineItems(inputs []LineItemInput) []domain.LineItem {
	items := make([]domain.LineItem, 0, len(inputs))
	for _, in := range inputs {
		id := in.ID
		if id == "" {
			id = uuid.NewString()
		}
		rate := s.cfg.DefaultGSTRate
		if in.GSTRate != nil {
			rate = *in.GSTRate
		}
		items = append(items, domain.LineItem{
			ID:          id,
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			HSNCode:     in.HSNCode,
			GSTRate:     rate,
		})
	}
	return items
}

func validateCreateInput(input *CreateInvoiceInput) error {
	if input.ClientName == "" || input.ClientAddress == "" || input.ClientEmail == "" {
		return fmt.Errorf("%w: client name, address and email are required", domain.ErrValidation)
	}
	for i, item := range input.LineItems {
		if item.Description == "" {
			return fmt.Errorf("%w: line item %d has no description", domain.ErrValidation, i+1)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: line item %d must have a quantity greater than zero", domain.ErrValidation, i+1)
		}
	}
	if input.Discount.Type != "" && !domain.ValidDiscountType(input.Discount.Type) {
		return fmt.Errorf("%w: discount type must be percentage or fixed", domain.ErrValidation)
	}
	return nil
}

func (s *invoiceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.invoices.GetByID(ctx, id)
}

func (s *invoiceService) List(ctx context.Context, filter query.Filter, sort query.Sort) ([]InvoiceListEntry, error) {
	history, err := s.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	view := query.Apply(history, filter, sort)
	entries := make([]InvoiceListEntry, 0, len(view))
	for i := range view {
		entries = append(entries, InvoiceListEntry{
			Invoice: view[i],
			Amount:  money.InvoiceTotal(&view[i]),
		})
	}
	return entries, nil
}

func (s *invoiceService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) (*domain.Invoice, error) {
	if !domain.ValidStatus(status) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}
	return s.invoices.UpdateStatus(ctx, id, status)
}

func (s *invoiceService) KnownItems(ctx context.Context) ([]catalog.KnownItem, error) {
	history, err := s.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.BuildItemIndex(history).Items(), nil
}

// Preview computes live totals for an in-progress form without touching any
// state. Unvalidated input is fine here: the computation is total.
func (s *invoiceService) Preview(items []LineItemInput, discount domain.Discount) money.Breakdown {
	return money.Compute(s.buildLineItems(items), discount)
}
