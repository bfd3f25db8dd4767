package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidBillingDay = errors.New("billing day must be between 1 and 31")
	ErrNegativeLimit     = errors.New("limit cannot be negative")
)

// Card is a credit card with its billing cycle configuration.
// Cards without ClosingDay or DueDay post every purchase to the purchase month.
type Card struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name       string          `gorm:"type:varchar(100);not null" json:"name"`
	BaseLimit  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"base_limit"`
	ClosingDay *int            `json:"closing_day,omitempty"`
	DueDay     *int            `json:"due_day,omitempty"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`
}

func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return c.Validate()
}

func (c *Card) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrNameRequired
	}
	if c.BaseLimit.IsNegative() {
		return ErrNegativeLimit
	}
	if !validBillingDay(c.ClosingDay) || !validBillingDay(c.DueDay) {
		return ErrInvalidBillingDay
	}
	return nil
}

// HasBillingCycle reports whether both closing and due days are configured.
func (c *Card) HasBillingCycle() bool {
	return c.ClosingDay != nil && c.DueDay != nil
}

func (c *Card) TableName() string {
	return "cards"
}

func validBillingDay(day *int) bool {
	return day == nil || (*day >= 1 && *day <= 31)
}
