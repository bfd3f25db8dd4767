package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/nando-castro/api-financas/internal/validation"
)

// CustomValidator implements echo.Validator with the shared validator
type CustomValidator struct {
	validator *validation.Validator
}

func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
