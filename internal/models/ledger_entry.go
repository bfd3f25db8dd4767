package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	EntryKindIncome  = "INCOME"
	EntryKindExpense = "EXPENSE"

	PaymentMethodCard = "CARD"
	PaymentMethodPix  = "PIX"
	PaymentMethodCash = "CASH"
)

var (
	ErrNameRequired          = errors.New("name is required")
	ErrInvalidEntryKind      = errors.New("kind must be INCOME or EXPENSE")
	ErrInvalidPaymentMethod  = errors.New("payment method must be CARD, PIX or CASH")
	ErrCardRequired          = errors.New("card is required when payment method is CARD")
	ErrCardNotAllowed        = errors.New("card is only allowed when payment method is CARD")
	ErrPaymentMethodOnIncome = errors.New("payment method only applies to expenses")
	ErrInvalidAmount         = errors.New("amount must be greater than zero")
	ErrInvalidInstallments   = errors.New("installments must be greater than zero")
	ErrEndBeforeStart        = errors.New("end date cannot be before start date")
)

// LedgerEntry is a recurring, installment or single income/expense record.
// An entry with no end date is active in every month from its start onward.
type LedgerEntry struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name          string          `gorm:"type:varchar(150);not null" json:"name"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Kind          string          `gorm:"type:varchar(10);not null;index" json:"kind"`
	StartDate     time.Time       `gorm:"type:date;not null;index" json:"start_date"`
	EndDate       *time.Time      `gorm:"type:date" json:"end_date,omitempty"`
	Installments  *int            `json:"installments,omitempty"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	PaymentMethod *string         `gorm:"type:varchar(10)" json:"payment_method,omitempty"`
	CardID        *uuid.UUID      `gorm:"type:uuid;index" json:"card_id,omitempty"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	CreatedAt     time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

func (e *LedgerEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return e.Validate()
}

func (e *LedgerEntry) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return ErrNameRequired
	}
	if e.Kind != EntryKindIncome && e.Kind != EntryKindExpense {
		return ErrInvalidEntryKind
	}
	if !e.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if e.Installments != nil && *e.Installments <= 0 {
		return ErrInvalidInstallments
	}
	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		return ErrEndBeforeStart
	}
	return e.validatePayment()
}

func (e *LedgerEntry) validatePayment() error {
	if e.PaymentMethod == nil {
		if e.CardID != nil {
			return ErrCardNotAllowed
		}
		return nil
	}

	if e.Kind == EntryKindIncome {
		return ErrPaymentMethodOnIncome
	}

	switch *e.PaymentMethod {
	case PaymentMethodCard:
		if e.CardID == nil {
			return ErrCardRequired
		}
	case PaymentMethodPix, PaymentMethodCash:
		if e.CardID != nil {
			return ErrCardNotAllowed
		}
	default:
		return fmt.Errorf("%w: %s", ErrInvalidPaymentMethod, *e.PaymentMethod)
	}
	return nil
}

// ApplyInstallmentEnd derives the end date from the installment count:
// start plus installments-1 months, clamped to the target month's last day.
func (e *LedgerEntry) ApplyInstallmentEnd() {
	if e.Installments == nil || *e.Installments <= 0 {
		return
	}
	end := e.StartPeriod().AddMonths(*e.Installments - 1).Day(e.StartDate.UTC().Day())
	e.EndDate = &end
}

// ActiveIn reports whether the entry overlaps any day of p.
func (e *LedgerEntry) ActiveIn(p Period) bool {
	if !e.StartDate.Before(p.Next().Start()) {
		return false
	}
	return e.EndDate == nil || !e.EndDate.Before(p.Start())
}

func (e *LedgerEntry) StartPeriod() Period {
	return PeriodOf(e.StartDate)
}

// LastPeriod is the month of the end date, or the start month when open-ended.
func (e *LedgerEntry) LastPeriod() Period {
	if e.EndDate == nil {
		return e.StartPeriod()
	}
	return PeriodOf(*e.EndDate)
}

// InstallmentIn returns the 1-based installment number that falls in p.
// ok is false when the entry has installments and p is outside 1..n.
// Entries without installments always report (0, true).
func (e *LedgerEntry) InstallmentIn(p Period) (int, bool) {
	if e.Installments == nil || *e.Installments <= 0 {
		return 0, true
	}
	n := e.StartPeriod().MonthsUntil(p) + 1
	if n < 1 || n > *e.Installments {
		return n, false
	}
	return n, true
}

func (e *LedgerEntry) IsIncome() bool {
	return e.Kind == EntryKindIncome
}

func (e *LedgerEntry) TableName() string {
	return "ledger_entries"
}

// SumByKind totals income and expense amounts of entries.
func SumByKind(entries []LedgerEntry) (income, expense decimal.Decimal) {
	income, expense = decimal.Zero, decimal.Zero
	for _, e := range entries {
		if e.IsIncome() {
			income = income.Add(e.Amount)
		} else {
			expense = expense.Add(e.Amount)
		}
	}
	return income, expense
}

// LedgerEntryView is a ledger entry with its category resolved for listings.
type LedgerEntryView struct {
	LedgerEntry
	Category *CategoryRef `json:"category"`
}
