package dto

// Amounts travel as strings and are parsed into decimals by the handlers.
// Dates use the ISO calendar format YYYY-MM-DD.

type CreateLedgerEntryRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=150"`
	Amount        string  `json:"amount" validate:"required,money"`
	Kind          string  `json:"kind" validate:"required,entry_kind"`
	Installments  *int    `json:"installments" validate:"omitempty,min=1,max=600"`
	StartDate     string  `json:"start_date" validate:"required,iso_date"`
	EndDate       *string `json:"end_date" validate:"omitempty,iso_date"`
	CategoryID    *string `json:"category_id" validate:"omitempty,uuid"`
	PaymentMethod *string `json:"payment_method" validate:"omitempty,oneof=CARD PIX CASH"`
	CardID        *string `json:"card_id" validate:"omitempty,uuid"`
}

type UpdateLedgerEntryRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=150"`
	Amount        *string `json:"amount" validate:"omitempty,money"`
	Kind          *string `json:"kind" validate:"omitempty,entry_kind"`
	Installments  *int    `json:"installments" validate:"omitempty,min=1,max=600"`
	StartDate     *string `json:"start_date" validate:"omitempty,iso_date"`
	EndDate       *string `json:"end_date" validate:"omitempty,iso_date"`
	CategoryID    *string `json:"category_id" validate:"omitempty,uuid"`
	PaymentMethod *string `json:"payment_method" validate:"omitempty,oneof=CARD PIX CASH"`
	CardID        *string `json:"card_id" validate:"omitempty,uuid"`
}
