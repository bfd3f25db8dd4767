package dto

type CreateCardRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	BaseLimit  string `json:"base_limit" validate:"omitempty,money"`
	ClosingDay *int   `json:"closing_day" validate:"omitempty,day_of_month"`
	DueDay     *int   `json:"due_day" validate:"omitempty,day_of_month"`
}

type UpdateCardRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=100"`
	BaseLimit  *string `json:"base_limit" validate:"omitempty,money"`
	ClosingDay *int    `json:"closing_day" validate:"omitempty,day_of_month"`
	DueDay     *int    `json:"due_day" validate:"omitempty,day_of_month"`
}

type AdjustStatementRequest struct {
	Month              int     `json:"month" validate:"required,month"`
	Year               int     `json:"year" validate:"required,min=2000,max=2100"`
	MonthLimitOverride *string `json:"month_limit_override" validate:"omitempty,money"`
	Adjustment         *string `json:"adjustment" validate:"omitempty,signed_money"`
}

// CreateStatementEntryRequest records a purchase or payment. Month and year
// only apply to payments and pick the statement being paid.
type CreateStatementEntryRequest struct {
	Kind        string  `json:"kind" validate:"required,oneof=PURCHASE PAYMENT"`
	Date        string  `json:"date" validate:"required,iso_date"`
	Amount      string  `json:"amount" validate:"required,money"`
	Description *string `json:"description" validate:"omitempty,max=255"`
	Month       *int    `json:"month" validate:"omitempty,month"`
	Year        *int    `json:"year" validate:"omitempty,min=2000,max=2100"`
}

type UpdateStatementEntryRequest struct {
	Kind        *string `json:"kind" validate:"omitempty,oneof=PURCHASE PAYMENT"`
	Date        *string `json:"date" validate:"omitempty,iso_date"`
	Amount      *string `json:"amount" validate:"omitempty,money"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}
