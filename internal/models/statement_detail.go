package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatementTotals are the derived figures of a single statement.
type StatementTotals struct {
	TotalPurchases decimal.Decimal `json:"total_purchases"`
	TotalPayments  decimal.Decimal `json:"total_paid"`
	StatementValue decimal.Decimal `json:"statement_value"`
	OpenBalance    decimal.Decimal `json:"open_balance"`
}

// LimitSnapshot is a card's limit position as seen from one statement.
type LimitSnapshot struct {
	EffectiveLimit decimal.Decimal `json:"effective_limit"`
	UtilizedLimit  decimal.Decimal `json:"utilized_limit"`
	AvailableLimit decimal.Decimal `json:"available_limit"`
}

type CardSummary struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	BaseLimit  decimal.Decimal `json:"base_limit"`
	ClosingDay *int            `json:"closing_day,omitempty"`
	DueDay     *int            `json:"due_day,omitempty"`
}

type StatementSummary struct {
	ID                 uuid.UUID        `json:"id"`
	Month              int              `json:"month"`
	Year               int              `json:"year"`
	MonthLimitOverride *decimal.Decimal `json:"month_limit_override,omitempty"`
	Adjustment         decimal.Decimal  `json:"adjustment"`
	StatementTotals
	LimitSnapshot
}

type StatementDetail struct {
	Card      CardSummary      `json:"card"`
	Statement StatementSummary `json:"statement"`
	Entries   []StatementEntry `json:"entries"`
}

// CardBalance is one row of the per-card balances overview for a month.
type CardBalance struct {
	CardID         uuid.UUID       `json:"card_id"`
	Name           string          `json:"name"`
	Limit          decimal.Decimal `json:"limit"`
	UtilizedLimit  decimal.Decimal `json:"utilized_limit"`
	AvailableLimit decimal.Decimal `json:"available_limit"`
	StatementValue decimal.Decimal `json:"current_statement"`
	OpenBalance    decimal.Decimal `json:"open_balance_month"`
	Month          int             `json:"month"`
	Year           int             `json:"year"`
}

func NewCardSummary(card *Card) CardSummary {
	return CardSummary{
		ID:         card.ID,
		Name:       card.Name,
		BaseLimit:  card.BaseLimit,
		ClosingDay: card.ClosingDay,
		DueDay:     card.DueDay,
	}
}
