package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nando-castro/api-financas/internal/models"
	"github.com/nando-castro/api-financas/internal/repositories"
)

type LedgerEntryInput struct {
	Name          string
	Amount        decimal.Decimal
	Kind          string
	StartDate     time.Time
	EndDate       *time.Time
	Installments  *int
	CategoryID    *uuid.UUID
	PaymentMethod *string
	CardID        *uuid.UUID
}

// LedgerEntryPatch holds the fields to change; nil fields are left as they are.
type LedgerEntryPatch struct {
	Name          *string
	Amount        *decimal.Decimal
	Kind          *string
	StartDate     *time.Time
	EndDate       *time.Time
	Installments  *int
	CategoryID    *uuid.UUID
	PaymentMethod *string
	CardID        *uuid.UUID
}

type ledgerService struct {
	store    repositories.Store
	balances MonthlyBalanceServiceInterface
	audit    AuditLoggerInterface
	metrics  MetricsRecorderInterface
	logger   *slog.Logger
}

func NewLedgerService(
	store repositories.Store,
	balances MonthlyBalanceServiceInterface,
	audit AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) LedgerServiceInterface {
	return &ledgerService{
		store:    store,
		balances: balances,
		audit:    audit,
		metrics:  metrics,
		logger:   logger,
	}
}

func (s *ledgerService) Create(ctx context.Context, userID uuid.UUID, input LedgerEntryInput) (*models.LedgerEntry, error) {
	entry := &models.LedgerEntry{
		Name:          strings.TrimSpace(input.Name),
		Amount:        input.Amount,
		Kind:          input.Kind,
		StartDate:     models.TruncateDay(input.StartDate),
		EndDate:       truncatePtr(input.EndDate),
		Installments:  input.Installments,
		CategoryID:    input.CategoryID,
		PaymentMethod: input.PaymentMethod,
		CardID:        input.CardID,
		UserID:        userID,
	}
	if entry.EndDate == nil {
		entry.ApplyInstallmentEnd()
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		if err := checkReferences(ctx, tx, userID, entry); err != nil {
			return err
		}
		if err := tx.LedgerEntries().Create(ctx, entry); err != nil {
			return err
		}
		return s.balances.WithStore(tx).RecomputeRange(ctx, userID, entry.StartPeriod(), entry.LastPeriod())
	})
	if err != nil {
		return nil, err
	}

	s.audit.LogLedgerEntryChanged(ctx, userID, entry.ID, "create")
	s.metrics.IncrementCounter("ledger_entry", map[string]string{"operation": "create"})
	return entry, nil
}

func (s *ledgerService) List(ctx context.Context, userID uuid.UUID) ([]models.LedgerEntryView, error) {
	entries, err := s.store.LedgerEntries().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return withCategories(ctx, s.store, entries)
}

func (s *ledgerService) Get(ctx context.Context, userID, entryID uuid.UUID) (*models.LedgerEntry, error) {
	return ownedLedgerEntry(ctx, s.store, userID, entryID)
}

// Update applies patch. Changing installments without an explicit end date
// derives the end date again from the start date.
func (s *ledgerService) Update(ctx context.Context, userID, entryID uuid.UUID, patch LedgerEntryPatch) (*models.LedgerEntry, error) {
	var entry *models.LedgerEntry

	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		var err error
		entry, err = ownedLedgerEntry(ctx, tx, userID, entryID)
		if err != nil {
			return err
		}
		before := *entry

		applyLedgerPatch(entry, patch)
		if err := entry.Validate(); err != nil {
			return err
		}
		if err := checkReferences(ctx, tx, userID, entry); err != nil {
			return err
		}
		if err := tx.LedgerEntries().Update(ctx, entry); err != nil {
			return err
		}

		from, through := spanOf(&before, entry)
		return s.balances.WithStore(tx).RecomputeRange(ctx, userID, from, through)
	})
	if err != nil {
		return nil, err
	}

	s.audit.LogLedgerEntryChanged(ctx, userID, entry.ID, "update")
	s.metrics.IncrementCounter("ledger_entry", map[string]string{"operation": "update"})
	return entry, nil
}

func (s *ledgerService) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		entry, err := ownedLedgerEntry(ctx, tx, userID, entryID)
		if err != nil {
			return err
		}

		if err := tx.ChecklistChecks().DeleteByLedgerEntry(ctx, entry.ID); err != nil {
			return err
		}
		if err := tx.LedgerEntries().Delete(ctx, entry.ID); err != nil {
			return err
		}
		return s.balances.WithStore(tx).RecomputeRange(ctx, userID, entry.StartPeriod(), entry.LastPeriod())
	})
	if err != nil {
		return err
	}

	s.audit.LogLedgerEntryChanged(ctx, userID, entryID, "delete")
	s.metrics.IncrementCounter("ledger_entry", map[string]string{"operation": "delete"})
	return nil
}

// ListByKind lists entries of one kind. With month and year set, only entries
// starting, ending or running through that month are kept.
func (s *ledgerService) ListByKind(ctx context.Context, userID uuid.UUID, kind string, month, year int, categoryID *uuid.UUID) ([]models.LedgerEntryView, error) {
	if kind != models.EntryKindIncome && kind != models.EntryKindExpense {
		return nil, models.ErrInvalidEntryKind
	}

	filter := repositories.LedgerFilter{Kind: kind, CategoryID: categoryID}
	if month != 0 && year != 0 {
		period, err := models.NewPeriod(year, month)
		if err != nil {
			return nil, err
		}
		filter.Period = &period
	}

	entries, err := s.store.LedgerEntries().ListByKind(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	return withCategories(ctx, s.store, entries)
}

func applyLedgerPatch(entry *models.LedgerEntry, patch LedgerEntryPatch) {
	if patch.Name != nil {
		entry.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Amount != nil {
		entry.Amount = *patch.Amount
	}
	if patch.Kind != nil {
		entry.Kind = *patch.Kind
	}
	if patch.StartDate != nil {
		entry.StartDate = models.TruncateDay(*patch.StartDate)
	}
	if patch.EndDate != nil {
		entry.EndDate = truncatePtr(patch.EndDate)
	}
	if patch.CategoryID != nil {
		entry.CategoryID = patch.CategoryID
	}
	if patch.PaymentMethod != nil {
		entry.PaymentMethod = patch.PaymentMethod
		if *patch.PaymentMethod != models.PaymentMethodCard {
			entry.CardID = nil
		}
	}
	if patch.CardID != nil {
		entry.CardID = patch.CardID
	}
	if patch.Installments != nil {
		entry.Installments = patch.Installments
		if patch.EndDate == nil {
			entry.ApplyInstallmentEnd()
		}
	}
}

// spanOf covers the months touched by an entry before and after an update.
func spanOf(before, after *models.LedgerEntry) (models.Period, models.Period) {
	from, through := before.StartPeriod(), before.LastPeriod()
	if p := after.StartPeriod(); p.Before(from) {
		from = p
	}
	if p := after.LastPeriod(); p.After(through) {
		through = p
	}
	return from, through
}

func checkReferences(ctx context.Context, store repositories.Store, userID uuid.UUID, entry *models.LedgerEntry) error {
	if entry.CategoryID != nil {
		if _, err := ownedCategory(ctx, store, userID, *entry.CategoryID); err != nil {
			return err
		}
	}
	if entry.CardID != nil {
		if _, err := ownedCard(ctx, store, userID, *entry.CardID); err != nil {
			return err
		}
	}
	return nil
}

func ownedLedgerEntry(ctx context.Context, store repositories.Store, userID, entryID uuid.UUID) (*models.LedgerEntry, error) {
	entry, err := store.LedgerEntries().GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, ErrForbidden
	}
	return entry, nil
}

// withCategories resolves category names with one lookup.
func withCategories(ctx context.Context, store repositories.Store, entries []models.LedgerEntry) ([]models.LedgerEntryView, error) {
	names, err := categoryNames(ctx, store, entries)
	if err != nil {
		return nil, err
	}

	views := make([]models.LedgerEntryView, len(entries))
	for i, e := range entries {
		views[i] = models.LedgerEntryView{LedgerEntry: e}
		if e.CategoryID != nil {
			if name, ok := names[*e.CategoryID]; ok {
				views[i].Category = &models.CategoryRef{ID: *e.CategoryID, Name: name}
			}
		}
	}
	return views, nil
}

func categoryNames(ctx context.Context, store repositories.Store, entries []models.LedgerEntry) (map[uuid.UUID]string, error) {
	seen := make(map[uuid.UUID]bool)
	ids := make([]uuid.UUID, 0)
	for _, e := range entries {
		if e.CategoryID != nil && !seen[*e.CategoryID] {
			seen[*e.CategoryID] = true
			ids = append(ids, *e.CategoryID)
		}
	}

	categories, err := store.Categories().GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names, nil
}

func truncatePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := models.TruncateDay(*t)
	return &d
}
