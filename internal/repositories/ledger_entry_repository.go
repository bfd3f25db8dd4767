package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nando-castro/api-financas/internal/models"
)

var ErrLedgerEntryNotFound = errors.New("ledger entry not found")

type LedgerEntryRepository struct {
	db *gorm.DB
}

func NewLedgerEntryRepository(db *gorm.DB) LedgerEntryRepositoryInterface {
	return &LedgerEntryRepository{db: db}
}

func (r *LedgerEntryRepository) Create(ctx context.Context, entry *models.LedgerEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create ledger entry: %w", err)
	}
	return nil
}

func (r *LedgerEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.LedgerEntry, error) {
	var entry models.LedgerEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLedgerEntryNotFound
		}
		return nil, fmt.Errorf("failed to get ledger entry: %w", err)
	}
	return &entry, nil
}

func (r *LedgerEntryRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	if len(ids) == 0 {
		return entries, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get ledger entries: %w", err)
	}
	return entries, nil
}

func (r *LedgerEntryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	return entries, nil
}

// ListByKind keeps entries that start in the month, end in the month, or span
// the whole month.
func (r *LedgerEntryRepository) ListByKind(ctx context.Context, userID uuid.UUID, filter LedgerFilter) ([]models.LedgerEntry, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ?", userID, filter.Kind)

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	if filter.Period != nil {
		monthStart := filter.Period.Start()
		nextStart := filter.Period.Next().Start()
		lastDay := filter.Period.End()

		query = query.Where(
			"((start_date >= ? AND start_date < ?) OR "+
				"(end_date IS NOT NULL AND end_date >= ? AND end_date < ?) OR "+
				"(start_date <= ? AND (end_date IS NULL OR end_date >= ?)))",
			monthStart, nextStart,
			monthStart, nextStart,
			monthStart, lastDay,
		)
	}

	var entries []models.LedgerEntry
	if err := query.Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list ledger entries by kind: %w", err)
	}
	return entries, nil
}

// ListActiveInPeriod returns entries whose [start, end] range touches the month.
func (r *LedgerEntryRepository) ListActiveInPeriod(ctx context.Context, userID uuid.UUID, period models.Period) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("start_date < ?", period.Next().Start()).
		Where("(end_date IS NULL OR end_date >= ?)", period.Start()).
		Order("start_date ASC, name ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list active ledger entries: %w", err)
	}
	return entries, nil
}

func (r *LedgerEntryRepository) Update(ctx context.Context, entry *models.LedgerEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Save(entry).Error; err != nil {
		return fmt.Errorf("failed to update ledger entry: %w", err)
	}
	return nil
}

func (r *LedgerEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.LedgerEntry{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete ledger entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrLedgerEntryNotFound
	}
	return nil
}

func (r *LedgerEntryRepository) ClearCategory(ctx context.Context, categoryID uuid.UUID) error {
	if err := r.db.WithContext(ctx).Model(&models.LedgerEntry{}).
		Where("category_id = ?", categoryID).
		Update("category_id", nil).Error; err != nil {
		return fmt.Errorf("failed to clear ledger entry category: %w", err)
	}
	return nil
}

// DetachCard drops the card payment method from entries paid with cardID.
func (r *LedgerEntryRepository) DetachCard(ctx context.Context, cardID uuid.UUID) error {
	if err := r.db.WithContext(ctx).Model(&models.LedgerEntry{}).
		Where("card_id = ?", cardID).
		Updates(map[string]any{"card_id": nil, "payment_method": nil}).Error; err != nil {
		return fmt.Errorf("failed to detach card from ledger entries: %w", err)
	}
	return nil
}
