package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nando-castro/api-financas/internal/models"
	"github.com/nando-castro/api-financas/internal/repositories"
)

// BalanceEpoch is the first month AccumulatedUntil sums from.
var BalanceEpoch = models.Period{Year: 2020, Month: 1}

type monthlyBalanceService struct {
	store   repositories.Store
	audit   AuditLoggerInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

func NewMonthlyBalanceService(
	store repositories.Store,
	audit AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) MonthlyBalanceServiceInterface {
	return &monthlyBalanceService{
		store:   store,
		audit:   audit,
		metrics: metrics,
		logger:  logger,
	}
}

func (s *monthlyBalanceService) WithStore(store repositories.Store) MonthlyBalanceServiceInterface {
	clone := *s
	clone.store = store
	return &clone
}

// Recompute rebuilds one month from the entries active in it and chains it to
// the stored accumulated balance of the previous month.
func (s *monthlyBalanceService) Recompute(ctx context.Context, userID uuid.UUID, period models.Period) (*models.MonthlyBalance, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.store.LedgerEntries().ListActiveInPeriod(ctx, userID, period)
	if err != nil {
		return nil, err
	}
	income, expense := models.SumByKind(entries)
	current := income.Sub(expense)

	prior := decimal.Zero
	previous, err := s.store.MonthlyBalances().Get(ctx, userID, period.Prev())
	switch {
	case err == nil:
		prior = previous.AccumulatedBalance
	case !errors.Is(err, repositories.ErrMonthlyBalanceNotFound):
		return nil, err
	}

	balance := &models.MonthlyBalance{
		UserID:             userID,
		Year:               period.Year,
		Month:              period.Month,
		TotalIncome:        income,
		TotalExpense:       expense,
		CurrentBalance:     current,
		AccumulatedBalance: prior.Add(current),
	}
	if err := s.store.MonthlyBalances().Upsert(ctx, balance); err != nil {
		return nil, err
	}

	s.audit.LogBalanceRecomputed(ctx, userID, period.Key(), current.StringFixed(2), balance.AccumulatedBalance.StringFixed(2))
	return balance, nil
}

// RecomputeRange recomputes from `from` forward, month by month, until the
// later of `through` and the user's newest stored month, so every stored row
// keeps accumulated(M) = accumulated(M-1) + current(M). A gap between the
// newest stored month and `from` is filled first.
func (s *monthlyBalanceService) RecomputeRange(ctx context.Context, userID uuid.UUID, from, through models.Period) error {
	if err := from.Validate(); err != nil {
		return err
	}

	start := time.Now()

	latest, err := s.store.MonthlyBalances().LatestPeriod(ctx, userID)
	if err != nil {
		return err
	}
	if latest != nil && latest.Next().Before(from) {
		from = latest.Next()
	}

	last := through
	if last.Before(from) {
		last = from
	}
	if latest != nil && latest.After(last) {
		last = *latest
	}

	months := 0
	for p := from; !p.After(last); p = p.Next() {
		if _, err := s.Recompute(ctx, userID, p); err != nil {
			return err
		}
		months++
	}

	s.audit.LogBalanceCascade(ctx, userID, from.Key(), last.Key(), months)
	s.metrics.RecordProcessingTime("balance_cascade", time.Since(start))
	s.metrics.RecordGauge("balance_cascade_months", float64(months), nil)
	return nil
}

// AccumulatedUntil sums every month's balance from BalanceEpoch up to the
// month before period, straight from the ledger and ignoring stored rows.
func (s *monthlyBalanceService) AccumulatedUntil(ctx context.Context, userID uuid.UUID, period models.Period) (decimal.Decimal, error) {
	entries, err := s.store.LedgerEntries().ListByUser(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	return accumulatedUntil(entries, period), nil
}

func (s *monthlyBalanceService) GetMonthlyBalance(ctx context.Context, userID uuid.UUID, period models.Period) (*models.MonthlyBalance, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	balance, err := s.store.MonthlyBalances().Get(ctx, userID, period)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, repositories.ErrMonthlyBalanceNotFound) {
		return nil, err
	}

	err = s.store.Transaction(ctx, func(tx repositories.Store) error {
		if err := s.WithStore(tx).RecomputeRange(ctx, userID, period, period); err != nil {
			return err
		}
		balance, err = tx.MonthlyBalances().Get(ctx, userID, period)
		return err
	})
	if err != nil {
		return nil, err
	}
	return balance, nil
}

func accumulatedUntil(entries []models.LedgerEntry, period models.Period) decimal.Decimal {
	total := decimal.Zero
	for p := BalanceEpoch; p.Before(period); p = p.Next() {
		total = total.Add(monthBalance(entries, p))
	}
	return total
}

// activeIn filters entries overlapping the month.
func activeIn(entries []models.LedgerEntry, period models.Period) []models.LedgerEntry {
	active := make([]models.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		if e.ActiveIn(period) {
			active = append(active, e)
		}
	}
	return active
}

func monthBalance(entries []models.LedgerEntry, period models.Period) decimal.Decimal {
	income, expense := models.SumByKind(activeIn(entries, period))
	return income.Sub(expense)
}
