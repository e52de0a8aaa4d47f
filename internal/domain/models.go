package domain

import (
	"time"

	"github.com/google/uuid"
)

// FirmProfile holds the issuing firm's details for the current session.
// Invoices embed a point-in-time copy of it, so later edits never alter
// invoices that were already created.
type FirmProfile struct {
	FirmName   string `json:"firm_name"`
	HolderName string `json:"holder_name"`
	Email      string `json:"email"`
	Logo       string `json:"logo,omitempty"` // base64 data URL
}

// LineItem is a single billable entry on an invoice. The line total is
// always derived as Quantity×UnitPrice and never stored.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	HSNCode     string  `json:"hsn_code"`
	GSTRate     float64 `json:"gst_rate"`
}

// Discount describes an invoice-level discount, either a percentage of the
// subtotal (0–100) or a fixed currency amount.
type Discount struct {
	Type  DiscountType `json:"type"`
	Value float64      `json:"value"`
}

// Invoice is a GST invoice created within the session.
type Invoice struct {
	ID            uuid.UUID     `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	ClientName    string        `json:"client_name"`
	ClientAddress string        `json:"client_address"`
	ClientEmail   string        `json:"client_email"`
	Date          Date          `json:"date"`
	DueDate       Date          `json:"due_date"`
	Status        InvoiceStatus `json:"status"`
	LineItems     []LineItem    `json:"line_items"`
	FirmDetails   FirmProfile   `json:"firm_details"`
	Notes         string        `json:"notes"`
	Terms         string        `json:"terms"`
	Discount      Discount      `json:"discount"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Client is a registry entry, created automatically the first time an
// invoice names a previously unseen client. Identity is the
// case-insensitive name; the stored address/email never change afterwards.
type Client struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	Email   string    `json:"email"`
}

// InvoiceSettings holds the numbering scheme for new invoices.
type InvoiceSettings struct {
	Prefix     string `json:"prefix"`
	NextNumber int    `json:"next_number"`
}

// Suggestion is an advisory HSN/GST classification for a line-item
// description, produced by an AI provider.
type Suggestion struct {
	HSNCode    string  `json:"hsn_code"`
	GSTRate    float64 `json:"gst_rate"`
	Confidence float64 `json:"confidence"`
}
