package reports

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nando-castro/api-financas/internal/models"
)

const ledgerSheet = "Ledger"

var ledgerHeaders = []string{
	"Name", "Kind", "Amount", "Start date", "End date",
	"Installments", "Category", "Payment method", "Created at",
}

// WriteLedgerWorkbook writes the entries as a single-sheet XLSX workbook,
// one row per entry in the order given.
func WriteLedgerWorkbook(w io.Writer, entries []models.LedgerEntryView) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(ledgerSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	for i, h := range ledgerHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(ledgerSheet, cell, h); err != nil {
			return err
		}
	}

	for idx, e := range entries {
		row := idx + 2
		amount, _ := e.Amount.Round(2).Float64()
		values := []any{
			e.Name,
			e.Kind,
			amount,
			e.StartDate.Format(dateLayout),
			optionalDate(e.EndDate),
			optionalInt(e.Installments),
			categoryName(e.Category),
			optionalString(e.PaymentMethod),
			e.CreatedAt.UTC().Format(time.RFC3339),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(ledgerSheet, cell, v); err != nil {
				return err
			}
		}
	}

	widths := map[string]float64{"A": 30, "B": 10, "C": 12, "D": 12, "E": 12, "F": 12, "G": 20, "H": 15, "I": 22}
	for col, width := range widths {
		if err := f.SetColWidth(ledgerSheet, col, col, width); err != nil {
			return err
		}
	}

	return f.Write(w)
}

// LedgerWorkbookName is the download file name for an export made at t.
func LedgerWorkbookName(t time.Time) string {
	return fmt.Sprintf("ledger_%s.xlsx", t.UTC().Format("20060102"))
}

func optionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func optionalInt(n *int) any {
	if n == nil {
		return ""
	}
	return *n
}

func optionalString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func categoryName(ref *models.CategoryRef) string {
	if ref == nil {
		return models.UncategorizedLabel
	}
	return ref.Name
}
