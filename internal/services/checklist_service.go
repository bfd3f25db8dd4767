package services

import (
	"context"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/nando-castro/api-financas/internal/dto"
	"github.com/nando-castro/api-financas/internal/models"
	"github.com/nando-castro/api-financas/internal/repositories"
)

type ChecklistToggle struct {
	LedgerEntryID uuid.UUID
	Checked       bool
}

type checklistService struct {
	store   repositories.Store
	audit   AuditLoggerInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
	now     Clock
}

func NewChecklistService(
	store repositories.Store,
	audit AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	now Clock,
) ChecklistServiceInterface {
	if now == nil {
		now = systemClock
	}
	return &checklistService{
		store:   store,
		audit:   audit,
		metrics: metrics,
		logger:  logger,
		now:     now,
	}
}

// Monthly lists the entries due in the month with their checked state.
// Installment entries outside their 1..n range are left out.
func (s *checklistService) Monthly(ctx context.Context, userID uuid.UUID, month, year int) (*models.MonthlyChecklist, error) {
	period, err := periodOrCurrent(s.now(), month, year)
	if err != nil {
		return nil, err
	}

	entries, err := s.store.LedgerEntries().ListActiveInPeriod(ctx, userID, period)
	if err != nil {
		return nil, err
	}
	checks, err := s.store.ChecklistChecks().ListByCompetence(ctx, userID, period.Key())
	if err != nil {
		return nil, err
	}
	names, err := categoryNames(ctx, s.store, entries)
	if err != nil {
		return nil, err
	}

	byEntry := make(map[uuid.UUID]models.ChecklistCheck, len(checks))
	for _, c := range checks {
		byEntry[c.LedgerEntryID] = c
	}

	items := make([]models.ChecklistItem, 0, len(entries))
	for _, e := range entries {
		installment, ok := e.InstallmentIn(period)
		if !ok {
			continue
		}

		item := models.ChecklistItem{
			LedgerEntryID: e.ID,
			Name:          e.Name,
			Kind:          e.Kind,
			Amount:        e.Amount,
			PostingDate:   period.Day(e.StartDate.UTC().Day()),
			Installments:  e.Installments,
			PaymentMethod: e.PaymentMethod,
			CardID:        e.CardID,
		}
		if e.Installments != nil {
			item.CurrentInstallment = &installment
		}
		if e.CategoryID != nil {
			if name, found := names[*e.CategoryID]; found {
				item.Category = &models.CategoryRef{ID: *e.CategoryID, Name: name}
			}
		}
		if c, found := byEntry[e.ID]; found {
			item.Checked = c.Checked
			item.CheckedAt = c.CheckedAt
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].PostingDate.Equal(items[j].PostingDate) {
			return items[i].PostingDate.Before(items[j].PostingDate)
		}
		return items[i].Name < items[j].Name
	})

	return &models.MonthlyChecklist{
		Month:      period.Month,
		Year:       period.Year,
		Competence: period.Key(),
		Items:      items,
	}, nil
}

// BulkUpdate stores checked flags for one competence month. Repeated ids keep
// the last value. Fails with ErrForbidden when any id is not the caller's.
func (s *checklistService) BulkUpdate(ctx context.Context, userID uuid.UUID, period models.Period, items []ChecklistToggle) (*dto.ChecklistBulkResponse, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}
	competence := period.Key()

	checked := make(map[uuid.UUID]bool, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		if it.LedgerEntryID == uuid.Nil {
			continue
		}
		if _, seen := checked[it.LedgerEntryID]; !seen {
			ids = append(ids, it.LedgerEntryID)
		}
		checked[it.LedgerEntryID] = it.Checked
	}
	if len(ids) == 0 {
		return &dto.ChecklistBulkResponse{OK: true, Competence: competence}, nil
	}

	now := s.now()
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		owned, err := tx.LedgerEntries().GetByIDs(ctx, ids)
		if err != nil {
			return err
		}
		allowed := make(map[uuid.UUID]bool, len(owned))
		for _, e := range owned {
			if e.UserID == userID {
				allowed[e.ID] = true
			}
		}

		upserts := make([]models.ChecklistCheck, 0, len(ids))
		for _, id := range ids {
			if !allowed[id] {
				return ErrForbidden
			}
			check := models.ChecklistCheck{
				UserID:        userID,
				LedgerEntryID: id,
				Competence:    competence,
				Checked:       checked[id],
			}
			if check.Checked {
				at := now
				check.CheckedAt = &at
			}
			upserts = append(upserts, check)
		}
		return tx.ChecklistChecks().Upsert(ctx, upserts)
	})
	if err != nil {
		return nil, err
	}

	s.audit.LogChecklistUpdated(ctx, userID, competence, len(ids))
	s.metrics.IncrementCounter("checklist_updated", nil)
	return &dto.ChecklistBulkResponse{OK: true, Competence: competence, Updated: len(ids)}, nil
}
