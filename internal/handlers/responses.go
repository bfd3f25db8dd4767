package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/nando-castro/api-financas/internal/errors"
	"github.com/nando-castro/api-financas/internal/models"
	"github.com/nando-castro/api-financas/internal/repositories"
	"github.com/nando-castro/api-financas/internal/services"
)

// Handlers answer errors through SendError (known client failures),
// SendSystemError (anything internal, logged but never exposed) or
// sendServiceError, which maps service errors onto the catalog.

const (
	TraceIDContextKey   = "trace_id"
	UserIDContextKey    = "user_id"
	UserEmailContextKey = "user_email"
	TokenJTIContextKey  = "token_jti"
)

// ErrorResponse is the wire shape of every error body.
type ErrorResponse = apperrors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}

// SendError sends a catalog error with the request's trace id.
func SendError(c echo.Context, code apperrors.ErrorCode, opts ...apperrors.ErrorOption) error {
	errorResponse := apperrors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError logs err and answers SYSTEM_001 without leaking it.
func SendSystemError(c echo.Context, err error) error {
	errorResponse, cause := apperrors.WrapSystemError(err, getTraceID(c))
	slog.ErrorContext(c.Request().Context(), "internal error",
		"trace_id", errorResponse.Error.TraceID,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", cause)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

type domainError struct {
	target error
	code   apperrors.ErrorCode
}

// domainErrors is checked in order; the first errors.Is match wins.
var domainErrors = []domainError{
	{repositories.ErrCardNotFound, apperrors.CardNotFound},
	{repositories.ErrStatementNotFound, apperrors.StatementNotFound},
	{repositories.ErrStatementEntryNotFound, apperrors.StatementEntryNotFound},
	{repositories.ErrLedgerEntryNotFound, apperrors.LedgerEntryNotFound},
	{repositories.ErrCategoryNotFound, apperrors.CategoryNotFound},
	{services.ErrForbidden, apperrors.AuthInsufficientPermission},

	{services.ErrInvalidCredentials, apperrors.AuthInvalidCredentials},
	{services.ErrAccountLocked, apperrors.AuthAccountLocked},
	{services.ErrUserAlreadyExists, apperrors.AuthEmailAlreadyRegistered},
	{services.ErrInvalidRefreshToken, apperrors.AuthInvalidTokenFormat},
	{services.ErrInvalidResetToken, apperrors.AuthInvalidResetToken},
	{services.ErrExpiredToken, apperrors.AuthExpiredToken},
	{services.ErrInvalidToken, apperrors.AuthInvalidTokenFormat},
	{services.ErrInvalidTokenType, apperrors.AuthInvalidTokenFormat},
	{services.ErrInvalidIssuer, apperrors.AuthInvalidTokenFormat},

	{models.ErrInvalidAmount, apperrors.ValidationInvalidAmount},
	{models.ErrNegativeLimit, apperrors.ValidationInvalidAmount},
	{models.ErrInvalidPeriod, apperrors.ValidationOutOfRange},
	{models.ErrInvalidBillingDay, apperrors.ValidationOutOfRange},
	{models.ErrInvalidInstallments, apperrors.ValidationOutOfRange},
	{models.ErrEndBeforeStart, apperrors.ValidationInvalidDate},
	{services.ErrInvalidDate, apperrors.ValidationInvalidDate},
	{models.ErrNameRequired, apperrors.ValidationRequiredField},
	{models.ErrCategoryNameRequired, apperrors.ValidationRequiredField},
	{models.ErrCardRequired, apperrors.ValidationRequiredField},
	{models.ErrInvalidEntryKind, apperrors.ValidationInvalidFormat},
	{models.ErrInvalidStatementEntryKind, apperrors.ValidationInvalidFormat},
	{models.ErrInvalidPaymentMethod, apperrors.ValidationInvalidFormat},
	{models.ErrCardNotAllowed, apperrors.ValidationGeneral},
	{models.ErrPaymentMethodOnIncome, apperrors.ValidationGeneral},
	{services.ErrPasswordEmpty, apperrors.ValidationRequiredField},
	{services.ErrPasswordTooLong, apperrors.ValidationOutOfRange},
}

// sendServiceError maps a service error onto the catalog. Validation
// failures carry the error text as detail; unmapped errors become SYSTEM_001.
func sendServiceError(c echo.Context, err error) error {
	var tooShort *services.PasswordTooShortError
	if errors.As(err, &tooShort) {
		return SendError(c, apperrors.ValidationOutOfRange, apperrors.WithDetails(tooShort.Error()))
	}

	for _, de := range domainErrors {
		if !errors.Is(err, de.target) {
			continue
		}
		if apperrors.GetHTTPStatus(de.code) == http.StatusBadRequest {
			return SendError(c, de.code, apperrors.WithDetails(de.target.Error()))
		}
		return SendError(c, de.code)
	}
	return SendSystemError(c, err)
}
