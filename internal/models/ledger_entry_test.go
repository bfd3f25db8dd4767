package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestLedgerEntry_Validate(t *testing.T) {
	cardID := uuid.New()
	end := date(2024, 12, 1)

	base := func() LedgerEntry {
		return LedgerEntry{
			Name:      "Rent",
			Amount:    decimal.NewFromInt(1200),
			Kind:      EntryKindExpense,
			StartDate: date(2025, 1, 10),
		}
	}

	tests := []struct {
		name   string
		mutate func(*LedgerEntry)
		err    error
	}{
		{name: "valid expense", mutate: func(e *LedgerEntry) {}},
		{name: "invalid kind", mutate: func(e *LedgerEntry) { e.Kind = "OTHER" }, err: ErrInvalidEntryKind},
		{name: "zero amount", mutate: func(e *LedgerEntry) { e.Amount = decimal.Zero }, err: ErrInvalidAmount},
		{name: "zero installments", mutate: func(e *LedgerEntry) { e.Installments = intPtr(0) }, err: ErrInvalidInstallments},
		{name: "end before start", mutate: func(e *LedgerEntry) { e.EndDate = &end }, err: ErrEndBeforeStart},
		{name: "card method without card", mutate: func(e *LedgerEntry) { e.PaymentMethod = strPtr(PaymentMethodCard) }, err: ErrCardRequired},
		{name: "card method with card", mutate: func(e *LedgerEntry) {
			e.PaymentMethod = strPtr(PaymentMethodCard)
			e.CardID = &cardID
		}},
		{name: "pix with card", mutate: func(e *LedgerEntry) {
			e.PaymentMethod = strPtr(PaymentMethodPix)
			e.CardID = &cardID
		}, err: ErrCardNotAllowed},
		{name: "card without method", mutate: func(e *LedgerEntry) { e.CardID = &cardID }, err: ErrCardNotAllowed},
		{name: "unknown method", mutate: func(e *LedgerEntry) { e.PaymentMethod = strPtr("BOLETO") }, err: ErrInvalidPaymentMethod},
		{name: "income with method", mutate: func(e *LedgerEntry) {
			e.Kind = EntryKindIncome
			e.PaymentMethod = strPtr(PaymentMethodCash)
		}, err: ErrPaymentMethodOnIncome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := base()
			tt.mutate(&e)
			err := e.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestLedgerEntry_ApplyInstallmentEnd(t *testing.T) {
	tests := []struct {
		name         string
		start        time.Time
		installments *int
		want         *time.Time
	}{
		{name: "three installments", start: date(2025, 1, 10), installments: intPtr(3), want: ptrTime(date(2025, 3, 10))},
		{name: "single installment", start: date(2025, 1, 10), installments: intPtr(1), want: ptrTime(date(2025, 1, 10))},
		{name: "crosses year", start: date(2025, 11, 5), installments: intPtr(4), want: ptrTime(date(2026, 2, 5))},
		{name: "clamps to month end", start: date(2025, 1, 31), installments: intPtr(2), want: ptrTime(date(2025, 2, 28))},
		{name: "no installments", start: date(2025, 1, 10), installments: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := LedgerEntry{StartDate: tt.start, Installments: tt.installments}
			e.ApplyInstallmentEnd()
			assert.Equal(t, tt.want, e.EndDate)
		})
	}
}

func ptrTime(t time.Time) *time.Time { return &t }

func TestLedgerEntry_ActiveIn(t *testing.T) {
	end := date(2025, 3, 10)
	bounded := LedgerEntry{StartDate: date(2025, 1, 10), EndDate: &end}
	open := LedgerEntry{StartDate: date(2025, 1, 31)}

	assert.False(t, bounded.ActiveIn(Period{Year: 2024, Month: 12}))
	assert.True(t, bounded.ActiveIn(Period{Year: 2025, Month: 1}))
	assert.True(t, bounded.ActiveIn(Period{Year: 2025, Month: 3}))
	assert.False(t, bounded.ActiveIn(Period{Year: 2025, Month: 4}))

	assert.True(t, open.ActiveIn(Period{Year: 2025, Month: 1}))
	assert.True(t, open.ActiveIn(Period{Year: 2030, Month: 6}))
	assert.Equal(t, Period{Year: 2025, Month: 1}, open.LastPeriod())
	assert.Equal(t, Period{Year: 2025, Month: 3}, bounded.LastPeriod())
}

func TestLedgerEntry_InstallmentIn(t *testing.T) {
	e := LedgerEntry{StartDate: date(2025, 11, 20), Installments: intPtr(3)}

	n, ok := e.InstallmentIn(Period{Year: 2025, Month: 11})
	assert.True(t, ok)
	assert.Equal(t, 1, n)

	n, ok = e.InstallmentIn(Period{Year: 2026, Month: 1})
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	_, ok = e.InstallmentIn(Period{Year: 2026, Month: 2})
	assert.False(t, ok)

	_, ok = e.InstallmentIn(Period{Year: 2025, Month: 10})
	assert.False(t, ok)

	recurring := LedgerEntry{StartDate: date(2025, 1, 1)}
	n, ok = recurring.InstallmentIn(Period{Year: 2027, Month: 1})
	assert.True(t, ok)
	assert.Equal(t, 0, n)
}

func TestSumByKind(t *testing.T) {
	entries := []LedgerEntry{
		{Kind: EntryKindIncome, Amount: decimal.NewFromInt(3000)},
		{Kind: EntryKindExpense, Amount: decimal.NewFromInt(1200)},
		{Kind: EntryKindExpense, Amount: decimal.RequireFromString("300.50")},
	}

	income, expense := SumByKind(entries)

	assert.True(t, income.Equal(decimal.NewFromInt(3000)))
	assert.True(t, expense.Equal(decimal.RequireFromString("1500.50")))
}
