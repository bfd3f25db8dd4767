package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nando-castro/api-financas/internal/models"
	"github.com/nando-castro/api-financas/internal/repositories"
)

type AdjustStatementInput struct {
	Period             models.Period
	MonthLimitOverride *decimal.Decimal
	Adjustment         *decimal.Decimal
}

// RecordEntryInput describes a new card transaction. Period only applies to
// payments and selects the statement being paid; it defaults to the month of
// Date.
type RecordEntryInput struct {
	Kind        string
	Date        time.Time
	Amount      decimal.Decimal
	Description *string
	Period      *models.Period
}

type EditEntryInput struct {
	Kind        *string
	Date        *time.Time
	Amount      *decimal.Decimal
	Description *string
}

type statementService struct {
	store   repositories.Store
	audit   AuditLoggerInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

func NewStatementService(
	store repositories.Store,
	audit AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) StatementServiceInterface {
	return &statementService{
		store:   store,
		audit:   audit,
		metrics: metrics,
		logger:  logger,
	}
}

func (s *statementService) GetOrCreateStatement(ctx context.Context, cardID uuid.UUID, period models.Period) (*models.Statement, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}
	return s.store.Statements().GetOrCreate(ctx, cardID, period)
}

func (s *statementService) AdjustStatement(ctx context.Context, userID, cardID uuid.UUID, input AdjustStatementInput) (*models.Statement, error) {
	if err := input.Period.Validate(); err != nil {
		return nil, err
	}
	if input.MonthLimitOverride != nil && input.MonthLimitOverride.IsNegative() {
		return nil, models.ErrNegativeLimit
	}

	var statement *models.Statement
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		if _, err := ownedCard(ctx, tx, userID, cardID); err != nil {
			return err
		}

		st, err := tx.Statements().GetOrCreate(ctx, cardID, input.Period)
		if err != nil {
			return err
		}

		if input.MonthLimitOverride != nil {
			st.MonthLimitOverride = input.MonthLimitOverride
		}
		if input.Adjustment != nil {
			st.Adjustment = *input.Adjustment
		}

		totalPaid, err := s.resync(ctx, tx, st.ID)
		if err != nil {
			return err
		}
		st.CachedTotalPaid = totalPaid

		if err := tx.Statements().Update(ctx, st); err != nil {
			return err
		}
		statement = st
		return nil
	})
	if err != nil {
		return nil, err
	}

	override := ""
	if statement.MonthLimitOverride != nil {
		override = statement.MonthLimitOverride.StringFixed(2)
	}
	s.audit.LogStatementAdjusted(ctx, cardID, statement.ID, override, statement.Adjustment.StringFixed(2))
	s.metrics.IncrementCounter("statement_adjusted", nil)

	return statement, nil
}

func (s *statementService) RecordTransaction(ctx context.Context, userID, cardID uuid.UUID, input RecordEntryInput) (*models.StatementEntry, error) {
	if input.Date.IsZero() {
		return nil, ErrInvalidDate
	}
	if input.Period != nil {
		if err := input.Period.Validate(); err != nil {
			return nil, err
		}
	}

	entry := &models.StatementEntry{
		Kind:        input.Kind,
		Description: input.Description,
		Amount:      input.Amount,
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		card, err := ownedCard(ctx, tx, userID, cardID)
		if err != nil {
			return err
		}

		var period models.Period
		if entry.IsPurchase() {
			resolution := ResolveStatement(card, input.Date)
			period = resolution.Period
			entry.PostingDate = resolution.PostingDate
		} else {
			entry.PostingDate = models.TruncateDay(input.Date)
			period = models.PeriodOf(entry.PostingDate)
			if input.Period != nil {
				period = *input.Period
			}
		}

		st, err := tx.Statements().GetOrCreate(ctx, card.ID, period)
		if err != nil {
			return err
		}

		entry.StatementID = st.ID
		if err := tx.StatementEntries().Create(ctx, entry); err != nil {
			return err
		}

		_, err = s.resync(ctx, tx, st.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.audit.LogStatementEntryRecorded(ctx, cardID, entry.StatementID, entry.ID, entry.Kind, entry.Amount.StringFixed(2))
	s.metrics.IncrementCounter("statement_entry", map[string]string{"operation": "create", "kind": entry.Kind})

	return entry, nil
}

// EditTransaction applies a partial update. A new date on a purchase is
// resolved again and may move the entry to another statement; a payment keeps
// its statement whatever the date.
func (s *statementService) EditTransaction(ctx context.Context, userID, cardID, entryID uuid.UUID, input EditEntryInput) (*models.StatementEntry, error) {
	var (
		entry         *models.StatementEntry
		fromStatement uuid.UUID
	)

	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		card, err := ownedCard(ctx, tx, userID, cardID)
		if err != nil {
			return err
		}

		entry, err = cardEntry(ctx, tx, card.ID, entryID)
		if err != nil {
			return err
		}
		fromStatement = entry.StatementID

		if input.Kind != nil {
			entry.Kind = *input.Kind
		}
		if input.Description != nil {
			entry.Description = input.Description
		}
		if input.Amount != nil {
			entry.Amount = *input.Amount
		}

		if input.Date != nil {
			if input.Date.IsZero() {
				return ErrInvalidDate
			}
			if entry.IsPurchase() {
				resolution := ResolveStatement(card, *input.Date)
				target, err := tx.Statements().GetOrCreate(ctx, card.ID, resolution.Period)
				if err != nil {
					return err
				}
				entry.PostingDate = resolution.PostingDate
				entry.StatementID = target.ID
			} else {
				entry.PostingDate = models.TruncateDay(*input.Date)
			}
		}

		if err := tx.StatementEntries().Update(ctx, entry); err != nil {
			return err
		}

		if _, err := s.resync(ctx, tx, fromStatement); err != nil {
			return err
		}
		if entry.StatementID != fromStatement {
			if _, err := s.resync(ctx, tx, entry.StatementID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if entry.StatementID != fromStatement {
		s.audit.LogStatementEntryMoved(ctx, entry.ID, fromStatement, entry.StatementID)
	}
	s.metrics.IncrementCounter("statement_entry", map[string]string{"operation": "update", "kind": entry.Kind})

	return entry, nil
}

func (s *statementService) DeleteTransaction(ctx context.Context, userID, cardID, entryID uuid.UUID) error {
	var entry *models.StatementEntry

	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		card, err := ownedCard(ctx, tx, userID, cardID)
		if err != nil {
			return err
		}

		entry, err = cardEntry(ctx, tx, card.ID, entryID)
		if err != nil {
			return err
		}

		if err := tx.StatementEntries().Delete(ctx, entry.ID); err != nil {
			return err
		}

		_, err = s.resync(ctx, tx, entry.StatementID)
		return err
	})
	if err != nil {
		return err
	}

	s.audit.LogStatementEntryDeleted(ctx, cardID, entry.StatementID, entry.ID)
	s.metrics.IncrementCounter("statement_entry", map[string]string{"operation": "delete", "kind": entry.Kind})

	return nil
}

func (s *statementService) GetStatementDetail(ctx context.Context, userID, cardID uuid.UUID, period models.Period) (*models.StatementDetail, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	var detail *models.StatementDetail

	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		card, err := ownedCard(ctx, tx, userID, cardID)
		if err != nil {
			return err
		}

		detail, err = s.statementDetail(ctx, tx, card, period)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordProcessingTime("statement_detail", time.Since(start))
	return detail, nil
}

// GetCardBalances summarises every card of the user for one month.
func (s *statementService) GetCardBalances(ctx context.Context, userID uuid.UUID, period models.Period) ([]models.CardBalance, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	balances := []models.CardBalance{}
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		cards, err := tx.Cards().ListByUser(ctx, userID)
		if err != nil {
			return err
		}

		for i := range cards {
			detail, err := s.statementDetail(ctx, tx, &cards[i], period)
			if err != nil {
				return err
			}

			st := detail.Statement
			balances = append(balances, models.CardBalance{
				CardID:         cards[i].ID,
				Name:           cards[i].Name,
				Limit:          st.EffectiveLimit,
				UtilizedLimit:  st.UtilizedLimit,
				AvailableLimit: st.AvailableLimit,
				StatementValue: st.StatementValue,
				OpenBalance:    st.OpenBalance,
				Month:          period.Month,
				Year:           period.Year,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return balances, nil
}

func (s *statementService) statementDetail(ctx context.Context, tx repositories.Store, card *models.Card, period models.Period) (*models.StatementDetail, error) {
	st, err := tx.Statements().GetOrCreate(ctx, card.ID, period)
	if err != nil {
		return nil, err
	}

	entries, err := tx.StatementEntries().ListByStatement(ctx, st.ID)
	if err != nil {
		return nil, err
	}

	totals := ComputeTotals(st.Adjustment, entries)
	if !st.CachedTotalPaid.Equal(totals.TotalPayments) {
		if err := tx.Statements().SetCachedTotalPaid(ctx, st.ID, totals.TotalPayments); err != nil {
			return nil, err
		}
		st.CachedTotalPaid = totals.TotalPayments
	}

	limits, err := s.limitSnapshot(ctx, tx, card, st)
	if err != nil {
		return nil, err
	}

	return &models.StatementDetail{
		Card: models.NewCardSummary(card),
		Statement: models.StatementSummary{
			ID:                 st.ID,
			Month:              st.Month,
			Year:               st.Year,
			MonthLimitOverride: st.MonthLimitOverride,
			Adjustment:         st.Adjustment,
			StatementTotals:    totals,
			LimitSnapshot:      limits,
		},
		Entries: entries,
	}, nil
}

func (s *statementService) limitSnapshot(ctx context.Context, tx repositories.Store, card *models.Card, st *models.Statement) (models.LimitSnapshot, error) {
	var prior *models.Statement
	if st.MonthLimitOverride == nil {
		var err error
		prior, err = tx.Statements().LatestOverrideBefore(ctx, card.ID, st.Period())
		if err != nil {
			return models.LimitSnapshot{}, err
		}
	}

	statements, err := tx.Statements().ListByCard(ctx, card.ID)
	if err != nil {
		return models.LimitSnapshot{}, err
	}

	ids := make([]uuid.UUID, len(statements))
	for i := range statements {
		ids[i] = statements[i].ID
	}

	entries, err := tx.StatementEntries().ListByStatements(ctx, ids)
	if err != nil {
		return models.LimitSnapshot{}, err
	}

	return NewLimitSnapshot(EffectiveLimit(card, st, prior), UtilizedLimit(statements, entries)), nil
}

// resync rewrites the statement's cached total paid from its entries.
func (s *statementService) resync(ctx context.Context, tx repositories.Store, statementID uuid.UUID) (decimal.Decimal, error) {
	entries, err := tx.StatementEntries().ListByStatement(ctx, statementID)
	if err != nil {
		return decimal.Zero, err
	}

	total := TotalPaid(entries)
	if err := tx.Statements().SetCachedTotalPaid(ctx, statementID, total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to resync statement %s: %w", statementID, err)
	}

	s.audit.LogStatementResynced(ctx, statementID, total.StringFixed(2))
	return total, nil
}

// ownedCard loads a card, hiding cards of other users as not found.
func ownedCard(ctx context.Context, store repositories.Store, userID, cardID uuid.UUID) (*models.Card, error) {
	card, err := store.Cards().GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card.UserID != userID {
		return nil, repositories.ErrCardNotFound
	}
	return card, nil
}

// cardEntry loads an entry and checks that it sits on one of the card's statements.
func cardEntry(ctx context.Context, store repositories.Store, cardID, entryID uuid.UUID) (*models.StatementEntry, error) {
	entry, err := store.StatementEntries().GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	st, err := store.Statements().GetByID(ctx, entry.StatementID)
	if err != nil {
		return nil, err
	}
	if st.CardID != cardID {
		return nil, repositories.ErrStatementEntryNotFound
	}
	return entry, nil
}
