package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstinvoice/internal/catalog"
	"gstinvoice/internal/domain"
)

func invoiceWith(items ...domain.LineItem) domain.Invoice {
	return domain.Invoice{LineItems: items}
}

func TestBuildItemIndex_MostRecentWins(t *testing.T) {
	history := []domain.Invoice{
		invoiceWith(domain.LineItem{Description: "Widget", UnitPrice: 10, HSNCode: "11111111", GSTRate: 18}),
		invoiceWith(domain.LineItem{Description: "Widget", UnitPrice: 12, HSNCode: "22222222", GSTRate: 12}),
	}

	ix := catalog.BuildItemIndex(history)
	require.Equal(t, 1, ix.Len())

	item, ok := ix.Lookup("Widget")
	require.True(t, ok)
	assert.InDelta(t, 12.0, item.UnitPrice, 1e-9)
	assert.Equal(t, "22222222", item.HSNCode)
	assert.InDelta(t, 12.0, item.GSTRate, 1e-9)
}

func TestBuildItemIndex_CaseInsensitiveKey(t *testing.T) {
	history := []domain.Invoice{
		invoiceWith(domain.LineItem{Description: "widget", UnitPrice: 10, GSTRate: 18}),
		invoiceWith(domain.LineItem{Description: "WIDGET", UnitPrice: 15, GSTRate: 18}),
	}

	ix := catalog.BuildItemIndex(history)
	require.Equal(t, 1, ix.Len())

	// Lookup works regardless of query casing, and the stored entry keeps
	// the casing of the most recent usage.
	item, ok := ix.Lookup("WiDgEt")
	require.True(t, ok)
	assert.Equal(t, "WIDGET", item.Description)
	assert.InDelta(t, 15.0, item.UnitPrice, 1e-9)
}

func TestBuildItemIndex_WithinInvoiceLastWins(t *testing.T) {
	history := []domain.Invoice{
		invoiceWith(
			domain.LineItem{Description: "Bolt", UnitPrice: 1},
			domain.LineItem{Description: "Bolt", UnitPrice: 2},
		),
	}

	ix := catalog.BuildItemIndex(history)
	item, ok := ix.Lookup("bolt")
	require.True(t, ok)
	assert.InDelta(t, 2.0, item.UnitPrice, 1e-9)
}

func TestBuildItemIndex_SkipsEmptyDescriptions(t *testing.T) {
	history := []domain.Invoice{
		invoiceWith(
			domain.LineItem{Description: "", UnitPrice: 99},
			domain.LineItem{Description: "Gear", UnitPrice: 5},
		),
	}

	ix := catalog.BuildItemIndex(history)
	assert.Equal(t, 1, ix.Len())

	_, ok := ix.Lookup("")
	assert.False(t, ok)
}

func TestItems_MostRecentFirst(t *testing.T) {
	history := []domain.Invoice{
		invoiceWith(domain.LineItem{Description: "Alpha", UnitPrice: 1}),
		invoiceWith(domain.LineItem{Description: "Beta", UnitPrice: 2}),
		invoiceWith(domain.LineItem{Description: "Gamma", UnitPrice: 3}),
	}

	items := catalog.BuildItemIndex(history).Items()
	require.Len(t, items, 3)
	assert.Equal(t, "Gamma", items[0].Description)
	assert.Equal(t, "Beta", items[1].Description)
	assert.Equal(t, "Alpha", items[2].Description)
}

func TestLookup_NoFuzzyMatch(t *testing.T) {
	ix := catalog.BuildItemIndex([]domain.Invoice{
		invoiceWith(domain.LineItem{Description: "Steel Rod 12mm", UnitPrice: 40}),
	})

	_, ok := ix.Lookup("Steel Rod")
	assert.False(t, ok)

	_, ok = ix.Lookup("steel rod 12mm")
	assert.True(t, ok)
}

func TestBuildItemIndex_EmptyHistory(t *testing.T) {
	ix := catalog.BuildItemIndex(nil)
	assert.Zero(t, ix.Len())
	assert.Empty(t, ix.Items())
}
