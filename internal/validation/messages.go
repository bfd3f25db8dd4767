package validation

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// FieldErrorMessage renders a validator failure as a short message to be
// prefixed with the field name.
func FieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", fe.Param())
	case "hexadecimal":
		return "must be hexadecimal"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "money":
		return "must be a non-negative amount with up to 2 decimal places"
	case "signed_money":
		return "must be an amount with up to 2 decimal places"
	case "entry_kind":
		return "must be INCOME or EXPENSE"
	case "iso_date":
		return "must be a date in YYYY-MM-DD format"
	case "day_of_month":
		return "must be between 1 and 31"
	case "month":
		return "must be between 1 and 12"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
