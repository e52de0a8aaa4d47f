package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/money"
)

const sheetName = "Invoices"

// WriteXLSX renders invoices as a single-sheet XLSX workbook on w.
func WriteXLSX(w io.Writer, invoices []domain.Invoice) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i := range invoices {
		inv := &invoices[i]
		b := money.Compute(inv.LineItems, inv.Discount)
		row := []interface{}{
			inv.InvoiceNumber,
			inv.ClientName,
			inv.ClientEmail,
			inv.Date.String(),
			inv.DueDate.String(),
			string(inv.Status),
			b.Subtotal,
			b.DiscountAmount,
			b.TaxableAmount,
			b.TotalGST,
			b.GrandTotal,
			len(inv.LineItems),
			inv.Notes,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("resolving cell: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
