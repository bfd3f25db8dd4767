package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCard_Validate(t *testing.T) {
	tests := []struct {
		name string
		card Card
		err  error
	}{
		{name: "valid with cycle", card: Card{Name: "Nubank", BaseLimit: decimal.NewFromInt(1000), ClosingDay: intPtr(5), DueDay: intPtr(15)}},
		{name: "valid without cycle", card: Card{Name: "Inter", BaseLimit: decimal.Zero}},
		{name: "negative limit", card: Card{Name: "Inter", BaseLimit: decimal.NewFromInt(-1)}, err: ErrNegativeLimit},
		{name: "closing day zero", card: Card{Name: "Inter", ClosingDay: intPtr(0)}, err: ErrInvalidBillingDay},
		{name: "due day 32", card: Card{Name: "Inter", DueDay: intPtr(32)}, err: ErrInvalidBillingDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.card.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}

	assert.Error(t, (&Card{}).Validate())
}

func TestCard_HasBillingCycle(t *testing.T) {
	assert.True(t, (&Card{ClosingDay: intPtr(5), DueDay: intPtr(15)}).HasBillingCycle())
	assert.False(t, (&Card{ClosingDay: intPtr(5)}).HasBillingCycle())
	assert.False(t, (&Card{DueDay: intPtr(15)}).HasBillingCycle())
}

func TestStatementEntry_Validate(t *testing.T) {
	assert.NoError(t, (&StatementEntry{Kind: StatementEntryPurchase, Amount: decimal.NewFromInt(10)}).Validate())
	assert.ErrorIs(t, (&StatementEntry{Kind: "REFUND", Amount: decimal.NewFromInt(10)}).Validate(), ErrInvalidStatementEntryKind)
	assert.ErrorIs(t, (&StatementEntry{Kind: StatementEntryPayment, Amount: decimal.Zero}).Validate(), ErrInvalidAmount)
}
