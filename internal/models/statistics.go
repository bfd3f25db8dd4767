package models

import "github.com/shopspring/decimal"

const (
	TrendPositive = "positive"
	TrendNegative = "negative"
)

type MonthlyStatistics struct {
	Month              string          `json:"month"`
	Year               int             `json:"year"`
	TotalIncome        decimal.Decimal `json:"total_income"`
	TotalExpense       decimal.Decimal `json:"total_expense"`
	Balance            decimal.Decimal `json:"balance"`
	PreviousBalance    decimal.Decimal `json:"previous_balance"`
	AccumulatedBalance decimal.Decimal `json:"accumulated_balance"`
	SavingsPercent     string          `json:"savings_percent"`
	Recommendation     string          `json:"recommendation"`
}

type MonthSummary struct {
	Month              string          `json:"month"`
	Income             decimal.Decimal `json:"income"`
	Expense            decimal.Decimal `json:"expense"`
	Balance            decimal.Decimal `json:"balance"`
	PreviousBalance    decimal.Decimal `json:"previous_balance"`
	AccumulatedBalance decimal.Decimal `json:"accumulated_balance"`
}

type AnnualStatistics struct {
	Year   int            `json:"year"`
	Months []MonthSummary `json:"months"`
}

type TrendStatistics struct {
	Trend           string          `json:"trend"`
	CurrentBalance  decimal.Decimal `json:"current_month_balance"`
	PreviousBalance decimal.Decimal `json:"previous_month_balance"`
	ChangePercent   string          `json:"change_percent"`
}

type CategoryTotal struct {
	Kind     string          `json:"kind"`
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}
