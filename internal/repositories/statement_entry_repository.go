package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nando-castro/api-financas/internal/models"
)

var ErrStatementEntryNotFound = errors.New("statement entry not found")

type StatementEntryRepository struct {
	db *gorm.DB
}

func NewStatementEntryRepository(db *gorm.DB) StatementEntryRepositoryInterface {
	return &StatementEntryRepository{db: db}
}

func (r *StatementEntryRepository) Create(ctx context.Context, entry *models.StatementEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create statement entry: %w", err)
	}
	return nil
}

func (r *StatementEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.StatementEntry, error) {
	var entry models.StatementEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatementEntryNotFound
		}
		return nil, fmt.Errorf("failed to get statement entry: %w", err)
	}
	return &entry, nil
}

// ListByStatement orders by posting date, newest first.
func (r *StatementEntryRepository) ListByStatement(ctx context.Context, statementID uuid.UUID) ([]models.StatementEntry, error) {
	var entries []models.StatementEntry
	if err := r.db.WithContext(ctx).
		Where("statement_id = ?", statementID).
		Order("posting_date DESC, created_at DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list statement entries: %w", err)
	}
	return entries, nil
}

func (r *StatementEntryRepository) ListByStatements(ctx context.Context, statementIDs []uuid.UUID) ([]models.StatementEntry, error) {
	var entries []models.StatementEntry
	if len(statementIDs) == 0 {
		return entries, nil
	}

	if err := r.db.WithContext(ctx).Where("statement_id IN ?", statementIDs).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list statement entries: %w", err)
	}
	return entries, nil
}

func (r *StatementEntryRepository) Update(ctx context.Context, entry *models.StatementEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Save(entry).Error; err != nil {
		return fmt.Errorf("failed to update statement entry: %w", err)
	}
	return nil
}

func (r *StatementEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.StatementEntry{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete statement entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrStatementEntryNotFound
	}
	return nil
}

func (r *StatementEntryRepository) DeleteByStatements(ctx context.Context, statementIDs []uuid.UUID) error {
	if len(statementIDs) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Where("statement_id IN ?", statementIDs).Delete(&models.StatementEntry{}).Error; err != nil {
		return fmt.Errorf("failed to delete statement entries: %w", err)
	}
	return nil
}
