package validation

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/nando-castro/api-financas/internal/models"
)

// DateLayout is the calendar date format accepted on the wire.
const DateLayout = "2006-01-02"

// Validator wraps the go-playground validator with the API's custom tags
type Validator struct {
	validate *validator.Validate
}

// GetValidate exposes the underlying validator for echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("money", validateMoney)
	_ = v.RegisterValidation("signed_money", validateSignedMoney)
	_ = v.RegisterValidation("entry_kind", validateEntryKind)
	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("day_of_month", validateDayOfMonth)
	_ = v.RegisterValidation("month", validateMonth)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

func (v *Validator) Struct(s any) error {
	return v.validate.Struct(s)
}

// ParseMoney parses a non-negative amount with at most two decimal places.
func ParseMoney(raw string) (decimal.Decimal, bool) {
	d, ok := ParseSignedMoney(raw)
	if !ok || d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}

// ParseSignedMoney parses an amount with at most two decimal places.
func ParseSignedMoney(raw string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, false
	}
	if d.Exponent() < -2 && !d.Equal(d.Round(2)) {
		return decimal.Zero, false
	}
	return d, true
}

// ParseDate parses a YYYY-MM-DD date as midnight UTC.
func ParseDate(raw string) (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func validateMoney(fl validator.FieldLevel) bool {
	_, ok := ParseMoney(fl.Field().String())
	return ok
}

func validateSignedMoney(fl validator.FieldLevel) bool {
	_, ok := ParseSignedMoney(fl.Field().String())
	return ok
}

func validateEntryKind(fl validator.FieldLevel) bool {
	kind := fl.Field().String()
	return kind == models.EntryKindIncome || kind == models.EntryKindExpense
}

func validateISODate(fl validator.FieldLevel) bool {
	_, ok := ParseDate(fl.Field().String())
	return ok
}

func validateDayOfMonth(fl validator.FieldLevel) bool {
	return intInRange(fl.Field(), 1, 31)
}

func validateMonth(fl validator.FieldLevel) bool {
	return intInRange(fl.Field(), 1, 12)
}

func intInRange(field reflect.Value, lo, hi int64) bool {
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := field.Int()
		return n >= lo && n <= hi
	default:
		return false
	}
}
