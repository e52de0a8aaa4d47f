// Package catalog derives the known-items index from invoice history: a
// deduplicated, most-recent-wins lookup of previously used line-item
// descriptions, used to prefill price/HSN/GST on re-entry.
package catalog

import (
	"strings"

	"gstinvoice/internal/domain"
)

// KnownItem is the most recent recorded usage of a line-item description.
type KnownItem struct {
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	HSNCode     string  `json:"hsn_code"`
	GSTRate     float64 `json:"gst_rate"`
}

// ItemIndex maps lowercased descriptions to their most recent usage.
type ItemIndex struct {
	keys  []string
	byKey map[string]KnownItem
}

// BuildItemIndex scans the full invoice history, last invoice first and
// last item within an invoice first; the first occurrence per lowercased
// description wins, so the most recent usage takes precedence.
func BuildItemIndex(invoices []domain.Invoice) *ItemIndex {
	var flat []domain.LineItem
	for _, inv := range invoices {
		flat = append(flat, inv.LineItems...)
	}

	ix := &ItemIndex{byKey: make(map[string]KnownItem)}
	for i := len(flat) - 1; i >= 0; i-- {
		item := flat[i]
		if item.Description == "" {
			continue
		}
		key := strings.ToLower(item.Description)
		if _, seen := ix.byKey[key]; seen {
			continue
		}
		ix.byKey[key] = KnownItem{
			Description: item.Description,
			UnitPrice:   item.UnitPrice,
			HSNCode:     item.HSNCode,
			GSTRate:     item.GSTRate,
		}
		ix.keys = append(ix.keys, key)
	}
	return ix
}

// Items returns the known items, most recently used first.
func (ix *ItemIndex) Items() []KnownItem {
	items := make([]KnownItem, 0, len(ix.keys))
	for _, key := range ix.keys {
		items = append(items, ix.byKey[key])
	}
	return items
}

// Lookup finds the known item for a description using an exact
// case-insensitive match. No fuzzy matching.
func (ix *ItemIndex) Lookup(description string) (KnownItem, bool) {
	item, ok := ix.byKey[strings.ToLower(description)]
	return item, ok
}

// Len returns the number of distinct descriptions in the index.
func (ix *ItemIndex) Len() int { return len(ix.keys) }
