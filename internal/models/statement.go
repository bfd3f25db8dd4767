package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatementEntryPurchase = "PURCHASE"
	StatementEntryPayment  = "PAYMENT"
)

var ErrInvalidStatementEntryKind = errors.New("kind must be PURCHASE or PAYMENT")

// Statement is one card's bill for a calendar month. Rows are created lazily
// the first time a month is touched. CachedTotalPaid always equals the sum of
// the statement's PAYMENT entries.
type Statement struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CardID             uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_statements_card_period" json:"card_id"`
	Month              int              `gorm:"not null;uniqueIndex:idx_statements_card_period" json:"month"`
	Year               int              `gorm:"not null;uniqueIndex:idx_statements_card_period" json:"year"`
	MonthLimitOverride *decimal.Decimal `gorm:"type:decimal(15,2)" json:"month_limit_override,omitempty"`
	Adjustment         decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0" json:"adjustment"`
	CachedTotalPaid    decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0" json:"total_paid"`
	CreatedAt          time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time        `gorm:"not null" json:"updated_at"`
}

func (s *Statement) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return s.Period().Validate()
}

func (s *Statement) Period() Period {
	return Period{Year: s.Year, Month: s.Month}
}

func (s *Statement) TableName() string {
	return "statements"
}

// StatementEntry is a purchase or payment posted to a statement.
type StatementEntry struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	StatementID uuid.UUID       `gorm:"type:uuid;not null;index" json:"statement_id"`
	Kind        string          `gorm:"type:varchar(10);not null" json:"kind"`
	Description *string         `gorm:"type:varchar(255)" json:"description,omitempty"`
	PostingDate time.Time       `gorm:"type:date;not null;index" json:"date"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

func (se *StatementEntry) BeforeCreate(tx *gorm.DB) error {
	if se.ID == uuid.Nil {
		se.ID = uuid.New()
	}
	return se.Validate()
}

func (se *StatementEntry) Validate() error {
	if se.Kind != StatementEntryPurchase && se.Kind != StatementEntryPayment {
		return ErrInvalidStatementEntryKind
	}
	if !se.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

func (se *StatementEntry) IsPurchase() bool {
	return se.Kind == StatementEntryPurchase
}

func (se *StatementEntry) TableName() string {
	return "statement_entries"
}
