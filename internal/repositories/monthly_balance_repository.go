package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nando-castro/api-financas/internal/models"
)

var ErrMonthlyBalanceNotFound = errors.New("monthly balance not found")

type MonthlyBalanceRepository struct {
	db *gorm.DB
}

func NewMonthlyBalanceRepository(db *gorm.DB) MonthlyBalanceRepositoryInterface {
	return &MonthlyBalanceRepository{db: db}
}

func (r *MonthlyBalanceRepository) Get(ctx context.Context, userID uuid.UUID, period models.Period) (*models.MonthlyBalance, error) {
	var balance models.MonthlyBalance
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND year = ? AND month = ?", userID, period.Year, period.Month).
		First(&balance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMonthlyBalanceNotFound
		}
		return nil, fmt.Errorf("failed to get monthly balance: %w", err)
	}
	return &balance, nil
}

// Upsert writes the balance keyed by (user, year, month) and reloads it, so
// balance carries the stored id and creation time afterwards.
func (r *MonthlyBalanceRepository) Upsert(ctx context.Context, balance *models.MonthlyBalance) error {
	balance.UpdatedAt = time.Now().UTC()
	if balance.CreatedAt.IsZero() {
		balance.CreatedAt = balance.UpdatedAt
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "year"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_income", "total_expense", "current_balance", "accumulated_balance", "updated_at",
		}),
	}).Create(balance).Error
	if err != nil {
		return fmt.Errorf("failed to upsert monthly balance: %w", err)
	}

	stored, err := r.Get(ctx, balance.UserID, balance.Period())
	if err != nil {
		return err
	}
	*balance = *stored
	return nil
}

// LatestPeriod returns the newest stored month for the user, or nil when none.
func (r *MonthlyBalanceRepository) LatestPeriod(ctx context.Context, userID uuid.UUID) (*models.Period, error) {
	var balance models.MonthlyBalance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("year DESC, month DESC").
		First(&balance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest monthly balance: %w", err)
	}
	period := balance.Period()
	return &period, nil
}
