// Package export renders the filtered invoice list as CSV or XLSX. Amount
// columns come from the same financial computation as the list view.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/money"
)

// BOM is the UTF-8 byte order mark, written ahead of CSV output for Excel
// compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row (13 columns).
var columns = []string{
	"Invoice Number",
	"Client Name",
	"Client Email",
	"Date",
	"Due Date",
	"Status",
	"Subtotal",
	"Discount",
	"Taxable Amount",
	"Total GST",
	"Grand Total",
	"Line Item Count",
	"Notes",
}

// CSVWriter wraps csv.Writer for exporting invoices.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteInvoices converts invoices to CSV rows and writes them.
func (w *CSVWriter) WriteInvoices(invoices []domain.Invoice) error {
	for i := range invoices {
		if err := w.csv.Write(invoiceToRow(&invoices[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error reports any error from previous writes or the last Flush.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

func invoiceToRow(inv *domain.Invoice) []string {
	b := money.Compute(inv.LineItems, inv.Discount)
	return []string{
		inv.InvoiceNumber,
		inv.ClientName,
		inv.ClientEmail,
		inv.Date.String(),
		inv.DueDate.String(),
		string(inv.Status),
		fmtAmount(b.Subtotal),
		fmtAmount(b.DiscountAmount),
		fmtAmount(b.TaxableAmount),
		fmtAmount(b.TotalGST),
		fmtAmount(b.GrandTotal),
		strconv.Itoa(len(inv.LineItems)),
		inv.Notes,
	}
}

func fmtAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
