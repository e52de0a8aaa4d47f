package domain

// InvoiceStatus represents the delivery/payment state of an invoice.
// Transitions are user-driven; any status is reachable from any other.
type InvoiceStatus string

const (
	StatusDraft          InvoiceStatus = "Draft"
	StatusDelivered      InvoiceStatus = "Delivered"
	StatusPaymentPending InvoiceStatus = "Payment Pending"
	StatusPaid           InvoiceStatus = "Paid"
)

// ValidStatus reports whether s is one of the known invoice statuses.
func ValidStatus(s InvoiceStatus) bool {
	switch s {
	case StatusDraft, StatusDelivered, StatusPaymentPending, StatusPaid:
		return true
	}
	return false
}

// DiscountType selects how Discount.Value is interpreted.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// ValidDiscountType reports whether t is a known discount type.
func ValidDiscountType(t DiscountType) bool {
	return t == DiscountPercentage || t == DiscountFixed
}

// AllowedLogoTypes maps accepted logo MIME content types to their
// canonical extension.
var AllowedLogoTypes = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
}
