package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nando-castro/api-financas/internal/models"
)

type ChecklistCheckRepository struct {
	db *gorm.DB
}

func NewChecklistCheckRepository(db *gorm.DB) ChecklistCheckRepositoryInterface {
	return &ChecklistCheckRepository{db: db}
}

func (r *ChecklistCheckRepository) ListByCompetence(ctx context.Context, userID uuid.UUID, competence string) ([]models.ChecklistCheck, error) {
	var checks []models.ChecklistCheck
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND competence = ?", userID, competence).
		Find(&checks).Error; err != nil {
		return nil, fmt.Errorf("failed to list checklist checks: %w", err)
	}
	return checks, nil
}

// Upsert writes checks keyed by (user, ledger entry, competence).
func (r *ChecklistCheckRepository) Upsert(ctx context.Context, checks []models.ChecklistCheck) error {
	if len(checks) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "ledger_entry_id"}, {Name: "competence"}},
		DoUpdates: clause.AssignmentColumns([]string{"checked", "checked_at", "updated_at"}),
	}).Create(&checks).Error
	if err != nil {
		return fmt.Errorf("failed to upsert checklist checks: %w", err)
	}
	return nil
}

func (r *ChecklistCheckRepository) DeleteByLedgerEntry(ctx context.Context, ledgerEntryID uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("ledger_entry_id = ?", ledgerEntryID).Delete(&models.ChecklistCheck{}).Error; err != nil {
		return fmt.Errorf("failed to delete checklist checks: %w", err)
	}
	return nil
}
