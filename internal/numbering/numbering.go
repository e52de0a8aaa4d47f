// Package numbering formats sequential human-readable invoice numbers.
package numbering

import "fmt"

// Format renders an invoice number from a prefix and counter, zero-padding
// the counter to at least four digits. Counters of five or more digits are
// never truncated: Format("INV", 7) == "INV-0007",
// Format("X", 12345) == "X-12345".
func Format(prefix string, counter int) string {
	return fmt.Sprintf("%s-%04d", prefix, counter)
}
