package reports

import (
	"bytes"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nando-castro/api-financas/internal/models"
)

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

func datePtr(t time.Time) *time.Time { return &t }

func sampleDetail(entries int) *models.StatementDetail {
	detail := &models.StatementDetail{
		Card: models.CardSummary{
			ID:         uuid.New(),
			Name:       "Nubank",
			BaseLimit:  decimal.NewFromInt(1000),
			ClosingDay: intPtr(5),
			DueDay:     intPtr(15),
		},
		Statement: models.StatementSummary{
			ID:    uuid.New(),
			Month: 1,
			Year:  2025,
		},
	}
	detail.Statement.StatementValue = decimal.NewFromInt(600)
	detail.Statement.EffectiveLimit = decimal.NewFromInt(1000)
	detail.Statement.UtilizedLimit = decimal.NewFromInt(600)
	detail.Statement.AvailableLimit = decimal.NewFromInt(400)

	for i := 0; i < entries; i++ {
		detail.Entries = append(detail.Entries, models.StatementEntry{
			ID:          uuid.New(),
			Kind:        models.StatementEntryPurchase,
			Description: strPtr(gofakeit.ProductName()),
			PostingDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			Amount:      decimal.NewFromFloat(gofakeit.Price(1, 500)).Round(2),
		})
	}
	return detail
}

func TestWriteStatementPDF(t *testing.T) {
	var buf bytes.Buffer
	err := WriteStatementPDF(&buf, sampleDetail(3), time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWriteStatementPDF_PaginatesLongStatements(t *testing.T) {
	var short, long bytes.Buffer
	require.NoError(t, WriteStatementPDF(&short, sampleDetail(1), time.Now()))
	require.NoError(t, WriteStatementPDF(&long, sampleDetail(120), time.Now()))

	assert.Greater(t, long.Len(), short.Len())
}

func TestStatementPDFName(t *testing.T) {
	assert.Equal(t, "statement-2025-01.pdf", StatementPDFName(sampleDetail(0)))
}

func TestWriteLedgerWorkbook(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	entries := []models.LedgerEntryView{
		{
			LedgerEntry: models.LedgerEntry{
				ID: uuid.New(), Name: "Salary", Kind: models.EntryKindIncome,
				Amount: decimal.NewFromInt(5000), StartDate: start,
			},
			Category: &models.CategoryRef{ID: uuid.New(), Name: "Work"},
		},
		{
			LedgerEntry: models.LedgerEntry{
				ID: uuid.New(), Name: "Laptop", Kind: models.EntryKindExpense,
				Amount: decimal.RequireFromString("2000.50"), StartDate: start,
				EndDate: datePtr(start.AddDate(0, 2, 0)), Installments: intPtr(3),
				PaymentMethod: strPtr(models.PaymentMethodCard),
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteLedgerWorkbook(&buf, entries))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{ledgerSheet}, f.GetSheetList())

	rows, err := f.GetRows(ledgerSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, ledgerHeaders, rows[0])
	assert.Equal(t, "Salary", rows[1][0])
	assert.Equal(t, "Work", rows[1][6])
	assert.Equal(t, "Laptop", rows[2][0])
	assert.Equal(t, "2000.5", rows[2][2])
	assert.Equal(t, "2025-03-01", rows[2][4])
	assert.Equal(t, "3", rows[2][5])
	assert.Equal(t, models.UncategorizedLabel, rows[2][6])
	assert.Equal(t, "CARD", rows[2][7])
}

func TestLedgerWorkbookName(t *testing.T) {
	assert.Equal(t, "ledger_20250314.xlsx", LedgerWorkbookName(time.Date(2025, 3, 14, 23, 0, 0, 0, time.UTC)))
}
