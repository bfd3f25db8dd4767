package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ChecklistCheck records whether a ledger entry was marked as settled in a
// competence month (YYYY-MM).
type ChecklistCheck struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_checklist_checks_entry_competence" json:"-"`
	LedgerEntryID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_checklist_checks_entry_competence" json:"ledger_entry_id"`
	Competence    string     `gorm:"type:varchar(7);not null;uniqueIndex:idx_checklist_checks_entry_competence" json:"competence"`
	Checked       bool       `gorm:"not null;default:false" json:"checked"`
	CheckedAt     *time.Time `json:"checked_at,omitempty"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updated_at"`
}

func (cc *ChecklistCheck) BeforeCreate(tx *gorm.DB) error {
	if cc.ID == uuid.Nil {
		cc.ID = uuid.New()
	}
	return nil
}

func (cc *ChecklistCheck) TableName() string {
	return "checklist_checks"
}

type ChecklistItem struct {
	LedgerEntryID      uuid.UUID       `json:"ledger_entry_id"`
	Name               string          `json:"name"`
	Kind               string          `json:"kind"`
	Amount             decimal.Decimal `json:"amount"`
	PostingDate        time.Time       `json:"date"`
	Installments       *int            `json:"installments,omitempty"`
	CurrentInstallment *int            `json:"current_installment,omitempty"`
	Category           *CategoryRef    `json:"category,omitempty"`
	PaymentMethod      *string         `json:"payment_method,omitempty"`
	CardID             *uuid.UUID      `json:"card_id,omitempty"`
	Checked            bool            `json:"checked"`
	CheckedAt          *time.Time      `json:"checked_at,omitempty"`
}

type MonthlyChecklist struct {
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Competence string          `json:"competence"`
	Items      []ChecklistItem `json:"items"`
}
