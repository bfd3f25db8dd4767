package services

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nando-castro/api-financas/internal/dto"
	"github.com/nando-castro/api-financas/internal/models"
	"github.com/nando-castro/api-financas/internal/repositories"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountLocked       = errors.New("account is locked due to too many failed attempts")
	ErrUserAlreadyExists   = errors.New("user with this email already exists")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrInvalidResetToken   = errors.New("invalid or expired reset token")
)

// AuthService handles authentication business logic
type AuthService struct {
	store           repositories.Store
	passwordService PasswordServiceInterface
	tokenService    TokenServiceInterface
	mailer          MailPublisherInterface
	metrics         MetricsRecorderInterface
	resetTTL        time.Duration
	logger          *slog.Logger
	now             Clock
}

// NewAuthService creates a new authentication service
func NewAuthService(
	store repositories.Store,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	mailer MailPublisherInterface,
	metrics MetricsRecorderInterface,
	resetTTL time.Duration,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		store:           store,
		passwordService: passwordService,
		tokenService:    tokenService,
		mailer:          mailer,
		metrics:         metrics,
		resetTTL:        resetTTL,
		logger:          logger,
		now:             systemClock,
	}
}

// Register creates a user and signs them in
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	email := normalizeEmail(req.Email)

	existingUser, err := s.store.Users().GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		s.auditFailedRegistration(ctx, email, ipAddress, userAgent, "email_already_exists")
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hashedPassword,
	}
	if err := s.store.Users().Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	tokens, err := s.generateTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	s.createAuditLog(ctx, &user.ID, models.AuditActionRegister, user.ID.String(), ipAddress, userAgent, nil)
	s.countEvent(models.AuditActionRegister)
	return tokens, nil
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	email := normalizeEmail(req.Email)

	user, err := s.store.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.auditFailedLogin(ctx, email, ipAddress, userAgent, "user_not_found")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.IsLocked() {
		s.auditFailedLogin(ctx, email, ipAddress, userAgent, "account_locked")
		return nil, ErrAccountLocked
	}

	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		user.IncrementFailedAttempts()
		if err := s.store.Users().Update(ctx, user); err != nil {
			s.logger.ErrorContext(ctx, "failed to update login attempts",
				"error", err,
				"user_id", user.ID)
		}

		if user.IsLocked() {
			s.createAuditLog(ctx, &user.ID, models.AuditActionAccountLocked, user.ID.String(), ipAddress, userAgent, nil)
		}

		s.auditFailedLogin(ctx, email, ipAddress, userAgent, "invalid_password")
		return nil, ErrInvalidCredentials
	}

	user.Unlock()
	user.UpdateLastLogin()
	if err := s.store.Users().Update(ctx, user); err != nil {
		s.logger.WarnContext(ctx, "failed to reset login attempts",
			"error", err,
			"user_id", user.ID)
	}

	tokens, err := s.generateTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	s.createAuditLog(ctx, &user.ID, models.AuditActionLogin, user.ID.String(), ipAddress, userAgent, nil)
	s.countEvent(models.AuditActionLogin)
	return tokens, nil
}

// RefreshTokens rotates a refresh token into a new token pair
func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	claims, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		s.auditFailedTokenRefresh(ctx, "", ipAddress, userAgent, "invalid_token")
		return nil, ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	storedToken, err := s.store.RefreshTokens().GetByTokenHash(ctx, hashToken(refreshToken))
	if err != nil {
		s.auditFailedTokenRefresh(ctx, claims.UserID, ipAddress, userAgent, "token_not_found")
		return nil, ErrInvalidRefreshToken
	}

	if !storedToken.UsableAt(s.now()) {
		s.auditFailedTokenRefresh(ctx, claims.UserID, ipAddress, userAgent, "token_expired_or_revoked")
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.store.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.store.RefreshTokens().Revoke(ctx, storedToken.ID); err != nil {
		s.logger.WarnContext(ctx, "failed to revoke old token",
			"error", err,
			"user_id", user.ID,
			"token_id", storedToken.ID)
	}

	tokens, err := s.generateTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate new tokens: %w", err)
	}

	s.createAuditLog(ctx, &user.ID, models.AuditActionTokenRefresh, user.ID.String(), ipAddress, userAgent, nil)
	s.countEvent(models.AuditActionTokenRefresh)
	return tokens, nil
}

// Logout blacklists the access token and revokes the user's refresh tokens
func (s *AuthService) Logout(ctx context.Context, accessToken, ipAddress, userAgent string) error {
	claims, err := s.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		// expired tokens are blacklisted too
		jti, _ := s.tokenService.GetJTI(accessToken)
		if jti != "" {
			if err := s.blacklistToken(ctx, jti, uuid.Nil, s.now().Add(24*time.Hour)); err != nil {
				s.logger.ErrorContext(ctx, "failed to blacklist expired token",
					"error", err,
					"jti", jti)
			}
		}
		return nil
	}

	userID, _ := uuid.Parse(claims.UserID)

	expiry, _ := s.tokenService.GetTokenExpiry(accessToken)
	if err := s.blacklistToken(ctx, claims.ID, userID, expiry); err != nil {
		s.logger.ErrorContext(ctx, "failed to blacklist token",
			"error", err,
			"jti", claims.ID,
			"user_id", userID)
	}

	if err := s.store.RefreshTokens().RevokeAllForUser(ctx, userID); err != nil {
		s.logger.WarnContext(ctx, "failed to revoke refresh tokens",
			"error", err,
			"user_id", userID)
	}

	s.createAuditLog(ctx, &userID, models.AuditActionLogout, userID.String(), ipAddress, userAgent, nil)
	s.countEvent(models.AuditActionLogout)
	return nil
}

// ForgotPassword stores a reset token hash and hands the plain token to the
// mailer. Unknown emails succeed silently.
func (s *AuthService) ForgotPassword(ctx context.Context, email, ipAddress, userAgent string) error {
	email = normalizeEmail(email)

	user, err := s.store.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.createAuditLog(ctx, nil, models.AuditActionPasswordResetRequested, "", ipAddress, userAgent,
				map[string]any{"email": email, "reason": "user_not_found"})
			return nil
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	token, err := s.passwordService.GenerateResetToken()
	if err != nil {
		return err
	}

	expiresAt := s.now().Add(s.resetTTL)
	user.SetResetToken(hashToken(token), expiresAt)
	if err := s.store.Users().Update(ctx, user); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	msg := dto.PasswordResetMessage{
		Email:     user.Email,
		Name:      user.Name,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	if err := s.mailer.PublishPasswordReset(ctx, msg); err != nil {
		s.metrics.IncrementCounter("mail_published", map[string]string{"status": "failed"})
		return fmt.Errorf("failed to publish reset mail: %w", err)
	}
	s.metrics.IncrementCounter("mail_published", map[string]string{"status": "ok"})

	s.createAuditLog(ctx, &user.ID, models.AuditActionPasswordResetRequested, user.ID.String(), ipAddress, userAgent, nil)
	s.countEvent(models.AuditActionPasswordResetRequested)
	return nil
}

// ResetPassword sets a new password from a valid reset token and signs the
// user out everywhere.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword, ipAddress, userAgent string) error {
	hashedPassword, err := s.passwordService.HashPassword(newPassword)
	if err != nil {
		return err
	}

	var userID uuid.UUID
	err = s.store.Transaction(ctx, func(tx repositories.Store) error {
		user, err := tx.Users().GetByResetTokenHash(ctx, hashToken(token))
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return ErrInvalidResetToken
			}
			return err
		}
		if !user.ResetTokenValid(s.now()) {
			return ErrInvalidResetToken
		}

		user.PasswordHash = hashedPassword
		user.ClearResetToken()
		user.Unlock()
		if err := tx.Users().Update(ctx, user); err != nil {
			return err
		}
		userID = user.ID
		return tx.RefreshTokens().RevokeAllForUser(ctx, user.ID)
	})
	if err != nil {
		if errors.Is(err, ErrInvalidResetToken) {
			s.createAuditLog(ctx, nil, models.AuditActionPasswordReset, "", ipAddress, userAgent,
				map[string]any{"reason": "invalid_token"})
		}
		return err
	}

	s.createAuditLog(ctx, &userID, models.AuditActionPasswordReset, userID.String(), ipAddress, userAgent, nil)
	s.countEvent(models.AuditActionPasswordReset)
	return nil
}

func (s *AuthService) generateTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, expiresAt, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.tokenService.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	refreshTokenModel := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: refreshExpiresAt,
	}
	if err := s.store.RefreshTokens().Create(ctx, refreshTokenModel); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    expiresAt,
		Theme:        user.Theme,
		Currency:     user.Currency,
		Language:     user.Language,
	}, nil
}

func (s *AuthService) blacklistToken(ctx context.Context, jti string, userID uuid.UUID, expiresAt time.Time) error {
	token := &models.BlacklistedToken{
		JTI:       jti,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}
	return s.store.BlacklistedTokens().Create(ctx, token)
}

func (s *AuthService) countEvent(eventType string) {
	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": eventType})
}

func hashToken(token string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(token)))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) auditFailedRegistration(ctx context.Context, email, ipAddress, userAgent, reason string) {
	metadata := map[string]any{
		"email":  email,
		"reason": reason,
	}
	s.createAuditLog(ctx, nil, models.AuditActionRegister, "", ipAddress, userAgent, metadata)
}

func (s *AuthService) auditFailedLogin(ctx context.Context, email, ipAddress, userAgent, reason string) {
	metadata := map[string]any{
		"email":  email,
		"reason": reason,
	}
	s.createAuditLog(ctx, nil, models.AuditActionFailedLogin, "", ipAddress, userAgent, metadata)
	s.countEvent(models.AuditActionFailedLogin)
}

func (s *AuthService) auditFailedTokenRefresh(ctx context.Context, userID, ipAddress, userAgent, reason string) {
	var uid *uuid.UUID
	if id, err := uuid.Parse(userID); err == nil {
		uid = &id
	}
	metadata := map[string]any{
		"reason": reason,
	}
	s.createAuditLog(ctx, uid, models.AuditActionTokenRefresh, "", ipAddress, userAgent, metadata)
}

func (s *AuthService) createAuditLog(ctx context.Context, userID *uuid.UUID, action, resourceID, ipAddress, userAgent string, metadata map[string]any) {
	log := &models.AuditLog{
		UserID:     userID,
		Action:     action,
		Resource:   models.AuditResourceUser,
		ResourceID: resourceID,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata:   metadata,
	}

	// audit failures never block authentication
	if err := s.store.AuditLogs().Create(ctx, log); err != nil {
		s.logger.ErrorContext(ctx, "failed to create audit log",
			"error", err,
			"action", action,
			"resource_id", resourceID)
	}
}
