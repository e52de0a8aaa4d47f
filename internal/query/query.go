// Package query implements the read-only invoice collection view: filtering
// by client-name substring and calendar-date range, then a stable sort on a
// single invoice attribute.
package query

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"gstinvoice/internal/domain"
)

// Field identifies a sortable invoice attribute.
type Field string

const (
	FieldInvoiceNumber Field = "invoiceNumber"
	FieldClientName    Field = "clientName"
	FieldDate          Field = "date"
	FieldDueDate       Field = "dueDate"
	FieldStatus        Field = "status"
)

// ParseField validates a sort field name coming from the API.
func ParseField(s string) (Field, error) {
	switch Field(s) {
	case FieldInvoiceNumber, FieldClientName, FieldDate, FieldDueDate, FieldStatus:
		return Field(s), nil
	}
	return "", fmt.Errorf("unknown sort field %q", s)
}

// Filter selects invoices by client-name substring (case-insensitive, empty
// matches all) and an inclusive calendar-date range; a zero Start or End
// leaves that bound open.
type Filter struct {
	ClientSubstring string
	Start           domain.Date
	End             domain.Date
}

// Match reports whether an invoice passes the filter.
func (f Filter) Match(inv *domain.Invoice) bool {
	if !strings.Contains(strings.ToLower(inv.ClientName), strings.ToLower(f.ClientSubstring)) {
		return false
	}
	if !f.Start.IsZero() && inv.Date.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && inv.Date.After(f.End) {
		return false
	}
	return true
}

// Sort selects the ordering of the view.
type Sort struct {
	Field      Field
	Descending bool
}

// Toggle returns the sort state after the user selects a field: selecting
// the current field flips the direction, a new field sorts ascending.
func (s Sort) Toggle(field Field) Sort {
	if s.Field == field {
		return Sort{Field: field, Descending: !s.Descending}
	}
	return Sort{Field: field}
}

// Apply filters and sorts the invoice collection into a new slice. The sort
// is stable, so equal-key invoices keep their relative input order; the
// input is never mutated. Date fields compare chronologically and string
// fields case-insensitively with locale-aware ordering.
func Apply(invoices []domain.Invoice, filter Filter, srt Sort) []domain.Invoice {
	out := make([]domain.Invoice, 0, len(invoices))
	for i := range invoices {
		if filter.Match(&invoices[i]) {
			out = append(out, invoices[i])
		}
	}

	if srt.Field == "" {
		return out
	}

	coll := collate.New(language.English, collate.IgnoreCase)
	cmp := func(a, b *domain.Invoice) int {
		switch srt.Field {
		case FieldDate:
			return a.Date.Compare(b.Date)
		case FieldDueDate:
			return a.DueDate.Compare(b.DueDate)
		case FieldClientName:
			return coll.CompareString(a.ClientName, b.ClientName)
		case FieldStatus:
			return coll.CompareString(string(a.Status), string(b.Status))
		default:
			return coll.CompareString(a.InvoiceNumber, b.InvoiceNumber)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(&out[i], &out[j])
		if srt.Descending {
			return c > 0
		}
		return c < 0
	})
	return out
}
