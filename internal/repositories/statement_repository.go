package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nando-castro/api-financas/internal/models"
)

var ErrStatementNotFound = errors.New("statement not found")

type StatementRepository struct {
	db *gorm.DB
}

func NewStatementRepository(db *gorm.DB) StatementRepositoryInterface {
	return &StatementRepository{db: db}
}

// GetOrCreate returns the (card, month, year) statement, inserting an empty one
// if absent. Concurrent callers converge on the same row through the unique index.
func (r *StatementRepository) GetOrCreate(ctx context.Context, cardID uuid.UUID, period models.Period) (*models.Statement, error) {
	db := r.db.WithContext(ctx)

	candidate := &models.Statement{
		CardID:     cardID,
		Month:      period.Month,
		Year:       period.Year,
		Adjustment: decimal.Zero,
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(candidate).Error; err != nil {
		return nil, fmt.Errorf("failed to create statement: %w", err)
	}

	var statement models.Statement
	if err := db.Where("card_id = ? AND month = ? AND year = ?", cardID, period.Month, period.Year).
		First(&statement).Error; err != nil {
		return nil, fmt.Errorf("failed to load statement: %w", err)
	}
	return &statement, nil
}

func (r *StatementRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Statement, error) {
	var statement models.Statement
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&statement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatementNotFound
		}
		return nil, fmt.Errorf("failed to get statement: %w", err)
	}
	return &statement, nil
}

func (r *StatementRepository) ListByCard(ctx context.Context, cardID uuid.UUID) ([]models.Statement, error) {
	var statements []models.Statement
	if err := r.db.WithContext(ctx).
		Where("card_id = ?", cardID).
		Order("year ASC, month ASC").
		Find(&statements).Error; err != nil {
		return nil, fmt.Errorf("failed to list statements: %w", err)
	}
	return statements, nil
}

// LatestOverrideBefore finds the most recent statement strictly before period
// that carries a limit override. It returns nil, nil when there is none.
func (r *StatementRepository) LatestOverrideBefore(ctx context.Context, cardID uuid.UUID, period models.Period) (*models.Statement, error) {
	var statement models.Statement
	err := r.db.WithContext(ctx).
		Where("card_id = ? AND month_limit_override IS NOT NULL", cardID).
		Where("(year < ? OR (year = ? AND month < ?))", period.Year, period.Year, period.Month).
		Order("year DESC, month DESC").
		First(&statement).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find previous limit override: %w", err)
	}
	return &statement, nil
}

func (r *StatementRepository) Update(ctx context.Context, statement *models.Statement) error {
	if err := r.db.WithContext(ctx).Save(statement).Error; err != nil {
		return fmt.Errorf("failed to update statement: %w", err)
	}
	return nil
}

func (r *StatementRepository) SetCachedTotalPaid(ctx context.Context, id uuid.UUID, total decimal.Decimal) error {
	result := r.db.WithContext(ctx).Model(&models.Statement{}).
		Where("id = ?", id).
		Update("cached_total_paid", total)
	if result.Error != nil {
		return fmt.Errorf("failed to update statement total paid: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrStatementNotFound
	}
	return nil
}

func (r *StatementRepository) DeleteByCard(ctx context.Context, cardID uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("card_id = ?", cardID).Delete(&models.Statement{}).Error; err != nil {
		return fmt.Errorf("failed to delete card statements: %w", err)
	}
	return nil
}
