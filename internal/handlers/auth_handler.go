package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nando-castro/api-financas/internal/dto"
	apperrors "github.com/nando-castro/api-financas/internal/errors"
	"github.com/nando-castro/api-financas/internal/services"
)

const forgotPasswordReply = "If the email is registered, a reset link has been sent"

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService  services.AuthServiceInterface
	auditService services.AuditServiceInterface
}

func NewAuthHandler(authService services.AuthServiceInterface, auditService services.AuditServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		auditService: auditService,
	}
}

// Register creates an account and signs the user in.
// @Summary Register a new user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.TokenResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_*"
// @Failure 409 {object} errors.ErrorResponse "AUTH_007"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	tokens, err := h.authService.Register(c.Request().Context(), &req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, tokens)
}

// Login authenticates with email and password.
// @Summary Login user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_001"
// @Failure 403 {object} errors.ErrorResponse "AUTH_006"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	tokens, err := h.authService.Login(c.Request().Context(), &req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, tokens)
}

// RefreshToken rotates a refresh token into a new token pair.
// @Summary Refresh access token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_004"
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req dto.RefreshTokenRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	tokens, err := h.authService.RefreshTokens(c.Request().Context(), req.RefreshToken, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, tokens)
}

// Logout blacklists the presented access token. Runs behind RequireAuth.
// @Summary Logout user
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return SendError(c, apperrors.AuthMissingToken)
	}

	accessToken := bearerToken(authHeader)
	if accessToken == "" {
		return SendError(c, apperrors.AuthInvalidTokenFormat)
	}

	if err := h.authService.Logout(c.Request().Context(), accessToken, getClientIP(c), c.Request().UserAgent()); err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logout successful"})
}

// ForgotPassword always answers the same message so that registered emails
// cannot be probed.
// @Summary Request a password reset email
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Account email"
// @Success 200 {object} dto.MessageResponse
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req dto.ForgotPasswordRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.authService.ForgotPassword(c.Request().Context(), req.Email, getClientIP(c), c.Request().UserAgent()); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: forgotPasswordReply})
}

// ResetPassword sets a new password from a reset token.
// @Summary Reset password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Token and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} errors.ErrorResponse "AUTH_008"
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req dto.ResetPasswordRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.authService.ResetPassword(c.Request().Context(), req.Token, req.Password, getClientIP(c), c.Request().UserAgent()); err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password has been reset"})
}

// Activity pages through the caller's audit log.
// @Summary Account activity
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Param offset query int false "Offset"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} dto.ActivityResponse
// @Router /auth/activity [get]
func (h *AuthHandler) Activity(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", services.DefaultActivityLimit)
	if limit <= 0 {
		limit = services.DefaultActivityLimit
	}
	limit = min(limit, services.MaxActivityLimit)

	logs, total, err := h.auditService.GetUserActivity(c.Request().Context(), userID, offset, limit)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ActivityResponse{
		Items:  logs,
		Total:  total,
		Offset: max(offset, 0),
		Limit:  limit,
	})
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
		return ""
	}
	return token
}
