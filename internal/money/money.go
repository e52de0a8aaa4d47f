// Package money computes invoice totals: subtotal, clamped discount,
// proportional per-item discount allocation, per-item GST and grand total.
// All functions are pure and total over finite numeric input; validation of
// quantities and prices is the caller's responsibility.
package money

import "gstinvoice/internal/domain"

// ItemBreakdown holds the derived amounts for one line item.
type ItemBreakdown struct {
	ItemTotal     float64 `json:"item_total"`
	Share         float64 `json:"share"`
	Discount      float64 `json:"discount"`
	TaxableAmount float64 `json:"taxable_amount"`
	GSTAmount     float64 `json:"gst_amount"`
}

// Breakdown holds the full financial computation for an invoice. The
// per-item taxable amounts and GST amounts sum to TaxableAmount and
// TotalGST respectively, within floating-point tolerance.
type Breakdown struct {
	Subtotal       float64         `json:"subtotal"`
	DiscountAmount float64         `json:"discount_amount"`
	TaxableAmount  float64         `json:"taxable_amount"`
	TotalGST       float64         `json:"total_gst"`
	GrandTotal     float64         `json:"grand_total"`
	Items          []ItemBreakdown `json:"items"`
}

// ItemTotal returns quantity×unitPrice for a line item.
func ItemTotal(item domain.LineItem) float64 {
	return item.Quantity * item.UnitPrice
}

// DiscountAmount resolves a discount spec against a subtotal, clamped to
// [0, subtotal].
func DiscountAmount(subtotal float64, discount domain.Discount) float64 {
	raw := discount.Value
	if discount.Type == domain.DiscountPercentage {
		raw = subtotal * (discount.Value / 100)
	}
	if raw < 0 {
		raw = 0
	}
	if raw > subtotal {
		raw = subtotal
	}
	return raw
}

// Compute derives the complete breakdown for a sequence of line items and a
// discount spec. The invoice-level discount is spread across items in
// proportion to each item's share of the subtotal; each item's GST is then
// computed on its discounted amount. A zero subtotal yields all-zero
// derived amounts.
func Compute(items []domain.LineItem, discount domain.Discount) Breakdown {
	var subtotal float64
	for _, item := range items {
		subtotal += ItemTotal(item)
	}

	discountAmount := DiscountAmount(subtotal, discount)
	taxable := subtotal - discountAmount

	b := Breakdown{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		TaxableAmount:  taxable,
		Items:          make([]ItemBreakdown, 0, len(items)),
	}

	for _, item := range items {
		itemTotal := ItemTotal(item)
		var share float64
		if subtotal > 0 {
			share = itemTotal / subtotal
		}
		itemDiscount := discountAmount * share
		itemTaxable := itemTotal - itemDiscount
		itemGST := itemTaxable * (item.GSTRate / 100)

		b.TotalGST += itemGST
		b.Items = append(b.Items, ItemBreakdown{
			ItemTotal:     itemTotal,
			Share:         share,
			Discount:      itemDiscount,
			TaxableAmount: itemTaxable,
			GSTAmount:     itemGST,
		})
	}

	b.GrandTotal = b.TaxableAmount + b.TotalGST
	return b
}

// InvoiceTotal returns the grand total for an invoice, as shown in the
// Amount column of the invoice list.
func InvoiceTotal(inv *domain.Invoice) float64 {
	return Compute(inv.LineItems, inv.Discount).GrandTotal
}
