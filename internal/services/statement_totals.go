package services

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nando-castro/api-financas/internal/models"
)

// ComputeTotals derives a statement's figures from its entries.
func ComputeTotals(adjustment decimal.Decimal, entries []models.StatementEntry) models.StatementTotals {
	purchases, payments := decimal.Zero, decimal.Zero
	for _, e := range entries {
		if e.IsPurchase() {
			purchases = purchases.Add(e.Amount)
		} else {
			payments = payments.Add(e.Amount)
		}
	}

	value := purchases.Add(adjustment)
	return models.StatementTotals{
		TotalPurchases: purchases,
		TotalPayments:  payments,
		StatementValue: value,
		OpenBalance:    decimal.Max(decimal.Zero, value.Sub(payments)),
	}
}

// TotalPaid is the value cached on a statement: the sum of its payments.
func TotalPaid(entries []models.StatementEntry) decimal.Decimal {
	return ComputeTotals(decimal.Zero, entries).TotalPayments
}

// EffectiveLimit resolves the limit in force for a statement: its own
// override, then the latest earlier override on the card, then the base limit.
func EffectiveLimit(card *models.Card, statement *models.Statement, prior *models.Statement) decimal.Decimal {
	if statement != nil && statement.MonthLimitOverride != nil {
		return *statement.MonthLimitOverride
	}
	if prior != nil && prior.MonthLimitOverride != nil {
		return *prior.MonthLimitOverride
	}
	return card.BaseLimit
}

// UtilizedLimit sums the open balance of every statement of a card, future
// statements included.
func UtilizedLimit(statements []models.Statement, entries []models.StatementEntry) decimal.Decimal {
	byStatement := make(map[uuid.UUID][]models.StatementEntry, len(statements))
	for _, e := range entries {
		byStatement[e.StatementID] = append(byStatement[e.StatementID], e)
	}

	total := decimal.Zero
	for _, st := range statements {
		total = total.Add(ComputeTotals(st.Adjustment, byStatement[st.ID]).OpenBalance)
	}
	return total
}

func AvailableLimit(effective, utilized decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, effective.Sub(utilized))
}

func NewLimitSnapshot(effective, utilized decimal.Decimal) models.LimitSnapshot {
	return models.LimitSnapshot{
		EffectiveLimit: effective,
		UtilizedLimit:  utilized,
		AvailableLimit: AvailableLimit(effective, utilized),
	}
}
