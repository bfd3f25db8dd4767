package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthlyBalance caches one month of a user's ledger:
// AccumulatedBalance = previous month's AccumulatedBalance + CurrentBalance.
type MonthlyBalance struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_monthly_balances_user_period" json:"-"`
	Year               int             `gorm:"not null;uniqueIndex:idx_monthly_balances_user_period" json:"year"`
	Month              int             `gorm:"not null;uniqueIndex:idx_monthly_balances_user_period" json:"month"`
	TotalIncome        decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"total_income"`
	TotalExpense       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"total_expense"`
	CurrentBalance     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"current_balance"`
	AccumulatedBalance decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"accumulated_balance"`
	CreatedAt          time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"not null" json:"updated_at"`
}

func (mb *MonthlyBalance) BeforeCreate(tx *gorm.DB) error {
	if mb.ID == uuid.Nil {
		mb.ID = uuid.New()
	}
	return nil
}

func (mb *MonthlyBalance) Period() Period {
	return Period{Year: mb.Year, Month: mb.Month}
}

func (mb *MonthlyBalance) TableName() string {
	return "monthly_balances"
}
