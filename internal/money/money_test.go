package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/money"
)

func li(qty, price, rate float64) domain.LineItem {
	return domain.LineItem{Quantity: qty, UnitPrice: price, GSTRate: rate}
}

func TestCompute_PercentageDiscountAllocation(t *testing.T) {
	items := []domain.LineItem{
		li(2, 10, 18),
		li(1, 5, 18),
		li(1, 0, 18),
	}
	b := money.Compute(items, domain.Discount{Type: domain.DiscountPercentage, Value: 10})

	assert.InDelta(t, 25.0, b.Subtotal, 1e-9)
	assert.InDelta(t, 2.5, b.DiscountAmount, 1e-9)
	assert.InDelta(t, 22.5, b.TaxableAmount, 1e-9)

	require.Len(t, b.Items, 3)

	// Shares: 20/25, 5/25, 0/25
	assert.InDelta(t, 0.8, b.Items[0].Share, 1e-9)
	assert.InDelta(t, 0.2, b.Items[1].Share, 1e-9)
	assert.InDelta(t, 0.0, b.Items[2].Share, 1e-9)

	// Discount spread in proportion to item totals
	assert.InDelta(t, 2.0, b.Items[0].Discount, 1e-9)
	assert.InDelta(t, 0.5, b.Items[1].Discount, 1e-9)
	assert.InDelta(t, 0.0, b.Items[2].Discount, 1e-9)

	// Per-item taxable amounts reconcile with the invoice total
	var taxableSum, gstSum float64
	for _, item := range b.Items {
		taxableSum += item.TaxableAmount
		gstSum += item.GSTAmount
	}
	assert.InDelta(t, b.TaxableAmount, taxableSum, 1e-6)
	assert.InDelta(t, b.TotalGST, gstSum, 1e-6)

	assert.InDelta(t, 22.5*0.18, b.TotalGST, 1e-9)
	assert.InDelta(t, 22.5*1.18, b.GrandTotal, 1e-9)
}

func TestCompute_FixedDiscount(t *testing.T) {
	items := []domain.LineItem{
		li(1, 100, 18),
		li(1, 50, 12),
	}
	b := money.Compute(items, domain.Discount{Type: domain.DiscountFixed, Value: 30})

	assert.InDelta(t, 150.0, b.Subtotal, 1e-9)
	assert.InDelta(t, 30.0, b.DiscountAmount, 1e-9)
	assert.InDelta(t, 120.0, b.TaxableAmount, 1e-9)

	// 100/150 and 50/150 of the 30 discount
	assert.InDelta(t, 20.0, b.Items[0].Discount, 1e-9)
	assert.InDelta(t, 10.0, b.Items[1].Discount, 1e-9)

	// GST at mixed rates on discounted amounts
	assert.InDelta(t, 80*0.18, b.Items[0].GSTAmount, 1e-9)
	assert.InDelta(t, 40*0.12, b.Items[1].GSTAmount, 1e-9)
	assert.InDelta(t, 80*0.18+40*0.12, b.TotalGST, 1e-9)
	assert.InDelta(t, 120+80*0.18+40*0.12, b.GrandTotal, 1e-9)
}

func TestCompute_NoLineItems(t *testing.T) {
	b := money.Compute(nil, domain.Discount{Type: domain.DiscountPercentage, Value: 10})

	assert.Zero(t, b.Subtotal)
	assert.Zero(t, b.DiscountAmount)
	assert.Zero(t, b.TaxableAmount)
	assert.Zero(t, b.TotalGST)
	assert.Zero(t, b.GrandTotal)
	assert.Empty(t, b.Items)
}

func TestCompute_ZeroSubtotalItems(t *testing.T) {
	items := []domain.LineItem{
		li(1, 0, 18),
		li(3, 0, 12),
	}
	b := money.Compute(items, domain.Discount{Type: domain.DiscountFixed, Value: 50})

	assert.Zero(t, b.Subtotal)
	assert.Zero(t, b.DiscountAmount)
	assert.Zero(t, b.GrandTotal)
	for _, item := range b.Items {
		assert.Zero(t, item.Share)
		assert.Zero(t, item.Discount)
		assert.Zero(t, item.TaxableAmount)
		assert.Zero(t, item.GSTAmount)
	}
}

func TestDiscountAmount_Clamping(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		discount domain.Discount
		want     float64
	}{
		{"fixed exceeds subtotal", 100, domain.Discount{Type: domain.DiscountFixed, Value: 150}, 100},
		{"fixed negative", 100, domain.Discount{Type: domain.DiscountFixed, Value: -20}, 0},
		{"percentage over 100", 100, domain.Discount{Type: domain.DiscountPercentage, Value: 120}, 100},
		{"percentage negative", 100, domain.Discount{Type: domain.DiscountPercentage, Value: -5}, 0},
		{"fixed within bounds", 100, domain.Discount{Type: domain.DiscountFixed, Value: 25}, 25},
		{"percentage within bounds", 200, domain.Discount{Type: domain.DiscountPercentage, Value: 15}, 30},
		{"zero discount", 100, domain.Discount{Type: domain.DiscountPercentage, Value: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, money.DiscountAmount(tt.subtotal, tt.discount), 1e-9)
		})
	}
}

func TestCompute_FractionalQuantities(t *testing.T) {
	items := []domain.LineItem{
		li(2.5, 10, 18),
		li(0.5, 100, 18),
	}
	b := money.Compute(items, domain.Discount{})

	assert.InDelta(t, 75.0, b.Subtotal, 1e-9)
	assert.InDelta(t, 75.0, b.TaxableAmount, 1e-9)
	assert.InDelta(t, 75*0.18, b.TotalGST, 1e-9)
}

func TestInvoiceTotal(t *testing.T) {
	inv := &domain.Invoice{
		LineItems: []domain.LineItem{li(2, 50, 18)},
		Discount:  domain.Discount{Type: domain.DiscountPercentage, Value: 10},
	}
	// 100 - 10 = 90 taxable, +18% GST
	assert.InDelta(t, 90*1.18, money.InvoiceTotal(inv), 1e-9)
}
