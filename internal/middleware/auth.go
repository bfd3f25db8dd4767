package middleware

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "github.com/nando-castro/api-financas/internal/errors"
	"github.com/nando-castro/api-financas/internal/handlers"
	"github.com/nando-castro/api-financas/internal/repositories"
	"github.com/nando-castro/api-financas/internal/services"
)

// RequireAuth accepts a valid, non-blacklisted access token and stores the
// caller under handlers.UserIDContextKey.
func RequireAuth(tokenService services.TokenServiceInterface, blacklist repositories.BlacklistedTokenRepositoryInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, apperrors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if errors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, apperrors.AuthExpiredToken)
				}
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat)
			}

			revoked, err := blacklist.IsBlacklisted(c.Request().Context(), claims.ID)
			if err != nil {
				slog.ErrorContext(c.Request().Context(), "failed to check token blacklist",
					"error", err,
					"trace_id", GetTraceID(c))
				return handlers.SendSystemError(c, err)
			}
			if revoked {
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat, apperrors.WithDetails("Token has been revoked"))
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat, apperrors.WithDetails("Invalid user ID in token"))
			}

			c.Set(handlers.UserIDContextKey, userID)
			c.Set(handlers.UserEmailContextKey, claims.Email)
			c.Set(handlers.TokenJTIContextKey, claims.ID)

			return next(c)
		}
	}
}
