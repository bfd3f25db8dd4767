package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "github.com/nando-castro/api-financas/internal/errors"
	"github.com/nando-castro/api-financas/internal/models"
	"github.com/nando-castro/api-financas/internal/validation"
)

// ErrUnauthorized is returned when the auth middleware did not run
var ErrUnauthorized = errors.New("unauthorized")

func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, ErrUnauthorized
	}
	return userID, nil
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(param)
	if err != nil {
		return defaultValue
	}
	return value
}

func getClientIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.Request().RemoteAddr
}

// bindAndValidate decodes the body into req and runs the struct tags. On
// failure the error response has already been written and ok is false.
func bindAndValidate(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = validation.FieldErrorMessage(fe)
			}
			resp := apperrors.NewValidationError(fields, getTraceID(c))
			return false, c.JSON(resp.GetHTTPStatus(), resp)
		}
		return false, SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails(err.Error()))
	}
	return true, nil
}

// uuidParam parses a path parameter. A malformed id answers 400.
func uuidParam(c echo.Context, name string) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false, SendError(c, apperrors.ValidationInvalidFormat,
			apperrors.WithDetails(name+" must be a valid UUID"))
	}
	return id, true, nil
}

// periodQuery reads ?month&year, defaulting each missing part from now.
func periodQuery(c echo.Context, now time.Time) (models.Period, bool, error) {
	current := models.PeriodOf(now)
	p := models.Period{
		Month: getIntParam(c, "month", current.Month),
		Year:  getIntParam(c, "year", current.Year),
	}
	if err := p.Validate(); err != nil {
		return models.Period{}, false, SendError(c, apperrors.ValidationOutOfRange,
			apperrors.WithDetails(err.Error()))
	}
	return p, true, nil
}

func parseOptionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseOptionalDate(raw *string) (*time.Time, bool) {
	if raw == nil {
		return nil, true
	}
	t, ok := validation.ParseDate(*raw)
	if !ok {
		return nil, false
	}
	return &t, true
}
