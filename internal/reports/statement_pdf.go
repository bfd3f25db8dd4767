package reports

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/nando-castro/api-financas/internal/models"
)

const (
	dateLayout  = "2006-01-02"
	maxPDFRows  = 500
	pageBreakAt = 270
)

var entryColumns = []float64{28, 28, 96, 30}

// WriteStatementPDF renders a card statement with its limit snapshot and
// entries, newest first as they come from the detail.
func WriteStatementPDF(w io.Writer, detail *models.StatementDetail, generatedAt time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Card statement: "+trimTo(detail.Card.Name, 60))
	pdf.Ln(9)

	period := models.Period{Year: detail.Statement.Year, Month: detail.Statement.Month}
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, fmt.Sprintf("Period: %s %d", period.MonthName(), period.Year))
	pdf.Ln(5)
	if detail.Card.ClosingDay != nil && detail.Card.DueDay != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Closing day %d, due day %d", *detail.Card.ClosingDay, *detail.Card.DueDay))
		pdf.Ln(5)
	}
	pdf.Ln(5)

	summaryRow(pdf,
		[]string{"Statement", "Paid", "Open"},
		[]decimal.Decimal{detail.Statement.StatementValue, detail.Statement.TotalPayments, detail.Statement.OpenBalance})
	pdf.Ln(4)
	summaryRow(pdf,
		[]string{"Limit", "Utilized", "Available"},
		[]decimal.Decimal{detail.Statement.EffectiveLimit, detail.Statement.UtilizedLimit, detail.Statement.AvailableLimit})
	pdf.Ln(6)

	entryHeader(pdf)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(30, 30, 30)
	for i, entry := range detail.Entries {
		if i >= maxPDFRows {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.CellFormat(0, 8, "truncated", "1", 1, "C", false, 0, "")
			break
		}
		if pdf.GetY() > pageBreakAt {
			pdf.AddPage()
			entryHeader(pdf)
			pdf.SetFont("Helvetica", "", 9)
		}

		description := ""
		if entry.Description != nil {
			description = *entry.Description
		}
		amount := entry.Amount.StringFixed(2)
		if entry.Kind == models.StatementEntryPayment {
			amount = "-" + amount
		}

		pdf.CellFormat(entryColumns[0], 8, entry.Kind, "1", 0, "C", false, 0, "")
		pdf.CellFormat(entryColumns[1], 8, entry.PostingDate.Format(dateLayout), "1", 0, "C", false, 0, "")
		pdf.CellFormat(entryColumns[2], 8, trimTo(description, 60), "1", 0, "L", false, 0, "")
		pdf.CellFormat(entryColumns[3], 8, amount, "1", 1, "R", false, 0, "")
	}

	pdf.SetY(-18)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 10, "Generated "+generatedAt.UTC().Format(time.RFC3339), "", 0, "C", false, 0, "")

	return pdf.Output(w)
}

// StatementPDFName is the download file name for a statement.
func StatementPDFName(detail *models.StatementDetail) string {
	return fmt.Sprintf("statement-%04d-%02d.pdf", detail.Statement.Year, detail.Statement.Month)
}

func summaryRow(pdf *gofpdf.Fpdf, labels []string, values []decimal.Decimal) {
	width := 182.0 / float64(len(labels))

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(248, 248, 248)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 11)
	for i, label := range labels {
		ln := 0
		if i == len(labels)-1 {
			ln = 1
		}
		pdf.CellFormat(width, 9, label, "1", ln, "C", true, 0, "")
	}

	pdf.SetFont("Helvetica", "", 11)
	for i, value := range values {
		ln := 0
		if i == len(values)-1 {
			ln = 1
		}
		pdf.CellFormat(width, 9, value.StringFixed(2), "1", ln, "C", false, 0, "")
	}
}

func entryHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(245, 245, 245)
	pdf.SetTextColor(20, 20, 20)
	pdf.CellFormat(entryColumns[0], 8, "KIND", "1", 0, "C", true, 0, "")
	pdf.CellFormat(entryColumns[1], 8, "DATE", "1", 0, "C", true, 0, "")
	pdf.CellFormat(entryColumns[2], 8, "DESCRIPTION", "1", 0, "L", true, 0, "")
	pdf.CellFormat(entryColumns[3], 8, "AMOUNT", "1", 1, "R", true, 0, "")
}

func trimTo(s string, max int) string {
	s = strings.TrimSpace(s)
	if len([]rune(s)) <= max {
		return s
	}
	return string([]rune(s)[:max-3]) + "..."
}
