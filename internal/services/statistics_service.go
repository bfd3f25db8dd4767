package services

import (
	"context"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nando-castro/api-financas/internal/models"
	"github.com/nando-castro/api-financas/internal/repositories"
)

const (
	RecommendationPositive = "Congratulations! Your balance is positive. Consider investing part of the surplus."
	RecommendationNegative = "Attention! You spent more than you earned this month."
	RecommendationBalanced = "You kept a good financial balance."
)

var hundred = decimal.NewFromInt(100)

// statisticsService computes every figure straight from the ledger. Stored
// monthly balances are not read here.
type statisticsService struct {
	store  repositories.Store
	logger *slog.Logger
	now    Clock
}

func NewStatisticsService(store repositories.Store, logger *slog.Logger, now Clock) StatisticsServiceInterface {
	if now == nil {
		now = systemClock
	}
	return &statisticsService{
		store:  store,
		logger: logger,
		now:    now,
	}
}

func (s *statisticsService) Monthly(ctx context.Context, userID uuid.UUID, month, year int) (*models.MonthlyStatistics, error) {
	period, err := periodOrCurrent(s.now(), month, year)
	if err != nil {
		return nil, err
	}

	entries, err := s.store.LedgerEntries().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	income, expense := models.SumByKind(activeIn(entries, period))
	balance := income.Sub(expense)
	previous := accumulatedUntil(entries, period)

	return &models.MonthlyStatistics{
		Month:              period.MonthName(),
		Year:               period.Year,
		TotalIncome:        income,
		TotalExpense:       expense,
		Balance:            balance,
		PreviousBalance:    previous,
		AccumulatedBalance: previous.Add(balance),
		SavingsPercent:     savingsPercent(balance, income),
		Recommendation:     recommendation(balance),
	}, nil
}

// Annual walks the twelve months of year carrying the balance accumulated
// before January.
func (s *statisticsService) Annual(ctx context.Context, userID uuid.UUID, year int) (*models.AnnualStatistics, error) {
	first, err := periodOrCurrent(s.now(), 1, year)
	if err != nil {
		return nil, err
	}

	entries, err := s.store.LedgerEntries().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	accumulated := accumulatedUntil(entries, first)
	months := make([]models.MonthSummary, 0, 12)
	for p := first; p.Year == first.Year; p = p.Next() {
		income, expense := models.SumByKind(activeIn(entries, p))
		balance := income.Sub(expense)
		previous := accumulated
		accumulated = accumulated.Add(balance)

		months = append(months, models.MonthSummary{
			Month:              p.MonthName(),
			Income:             income,
			Expense:            expense,
			Balance:            balance,
			PreviousBalance:    previous,
			AccumulatedBalance: accumulated,
		})
	}

	return &models.AnnualStatistics{Year: first.Year, Months: months}, nil
}

// Trend compares the current month's balance with the previous month's.
func (s *statisticsService) Trend(ctx context.Context, userID uuid.UUID) (*models.TrendStatistics, error) {
	current := models.PeriodOf(s.now())

	entries, err := s.store.LedgerEntries().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	cur := monthBalance(entries, current)
	prev := monthBalance(entries, current.Prev())

	trend := models.TrendNegative
	if cur.GreaterThanOrEqual(prev) {
		trend = models.TrendPositive
	}

	return &models.TrendStatistics{
		Trend:           trend,
		CurrentBalance:  cur,
		PreviousBalance: prev,
		ChangePercent:   changePercent(cur, prev),
	}, nil
}

// ByCategory totals the month's active entries per kind and category name.
func (s *statisticsService) ByCategory(ctx context.Context, userID uuid.UUID, month, year int) ([]models.CategoryTotal, error) {
	period, err := periodOrCurrent(s.now(), month, year)
	if err != nil {
		return nil, err
	}

	entries, err := s.store.LedgerEntries().ListActiveInPeriod(ctx, userID, period)
	if err != nil {
		return nil, err
	}
	names, err := categoryNames(ctx, s.store, entries)
	if err != nil {
		return nil, err
	}

	type groupKey struct{ kind, category string }
	index := make(map[groupKey]int)
	totals := make([]models.CategoryTotal, 0)
	for _, e := range entries {
		name := models.UncategorizedLabel
		if e.CategoryID != nil {
			if n, ok := names[*e.CategoryID]; ok {
				name = n
			}
		}

		k := groupKey{kind: e.Kind, category: name}
		i, ok := index[k]
		if !ok {
			i = len(totals)
			index[k] = i
			totals = append(totals, models.CategoryTotal{Kind: e.Kind, Category: name, Total: decimal.Zero})
		}
		totals[i].Total = totals[i].Total.Add(e.Amount)
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Kind != totals[j].Kind {
			return totals[i].Kind < totals[j].Kind
		}
		return totals[i].Category < totals[j].Category
	})
	return totals, nil
}

// savingsPercent formats balance/income as "x.xx%", or "0%" without income.
func savingsPercent(balance, income decimal.Decimal) string {
	if !income.IsPositive() {
		return "0%"
	}
	return balance.Div(income).Mul(hundred).StringFixed(2) + "%"
}

func recommendation(balance decimal.Decimal) string {
	switch {
	case balance.IsPositive():
		return RecommendationPositive
	case balance.IsNegative():
		return RecommendationNegative
	default:
		return RecommendationBalanced
	}
}

// changePercent is +100% when prev is zero, else (cur-prev)/|prev|.
func changePercent(cur, prev decimal.Decimal) string {
	change := hundred
	if !prev.IsZero() {
		change = cur.Sub(prev).Div(prev.Abs()).Mul(hundred)
	}

	sign := ""
	if !change.IsNegative() {
		sign = "+"
	}
	return sign + change.StringFixed(2) + "%"
}
