package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nando-castro/api-financas/internal/dto"
	"github.com/nando-castro/api-financas/internal/models"
	"github.com/nando-castro/api-financas/internal/repositories"
)

// Clock returns the current time. Services default month/year arguments from it.
type Clock func() time.Time

type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest, ipAddress, userAgent string) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error)
	RefreshTokens(ctx context.Context, refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessToken, ipAddress, userAgent string) error
	ForgotPassword(ctx context.Context, email, ipAddress, userAgent string) error
	ResetPassword(ctx context.Context, token, newPassword, ipAddress, userAgent string) error
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetJTI(tokenString string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
	GenerateResetToken() (string, error)
}

// MailPublisherInterface hands password reset mails to the mailer process.
type MailPublisherInterface interface {
	PublishPasswordReset(ctx context.Context, msg dto.PasswordResetMessage) error
}

type AuditServiceInterface interface {
	GetUserActivity(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
}

type CategoryServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, name string) (*models.Category, error)
	List(ctx context.Context, userID uuid.UUID) ([]models.Category, error)
	Update(ctx context.Context, userID, categoryID uuid.UUID, name string) (*models.Category, error)
	Delete(ctx context.Context, userID, categoryID uuid.UUID) error
}

type LedgerServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, input LedgerEntryInput) (*models.LedgerEntry, error)
	List(ctx context.Context, userID uuid.UUID) ([]models.LedgerEntryView, error)
	Get(ctx context.Context, userID, entryID uuid.UUID) (*models.LedgerEntry, error)
	Update(ctx context.Context, userID, entryID uuid.UUID, patch LedgerEntryPatch) (*models.LedgerEntry, error)
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
	ListByKind(ctx context.Context, userID uuid.UUID, kind string, month, year int, categoryID *uuid.UUID) ([]models.LedgerEntryView, error)
}

type CardServiceInterface interface {
	CreateCard(ctx context.Context, userID uuid.UUID, input CardInput) (*models.Card, error)
	ListCards(ctx context.Context, userID uuid.UUID) ([]models.Card, error)
	GetCard(ctx context.Context, userID, cardID uuid.UUID) (*models.Card, error)
	UpdateCard(ctx context.Context, userID, cardID uuid.UUID, patch CardPatch) (*models.Card, error)
	DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error
}

type StatementServiceInterface interface {
	GetOrCreateStatement(ctx context.Context, cardID uuid.UUID, period models.Period) (*models.Statement, error)
	AdjustStatement(ctx context.Context, userID, cardID uuid.UUID, input AdjustStatementInput) (*models.Statement, error)
	RecordTransaction(ctx context.Context, userID, cardID uuid.UUID, input RecordEntryInput) (*models.StatementEntry, error)
	EditTransaction(ctx context.Context, userID, cardID, entryID uuid.UUID, input EditEntryInput) (*models.StatementEntry, error)
	DeleteTransaction(ctx context.Context, userID, cardID, entryID uuid.UUID) error
	GetStatementDetail(ctx context.Context, userID, cardID uuid.UUID, period models.Period) (*models.StatementDetail, error)
	GetCardBalances(ctx context.Context, userID uuid.UUID, period models.Period) ([]models.CardBalance, error)
}

type MonthlyBalanceServiceInterface interface {
	// WithStore binds the service to a transactional store.
	WithStore(store repositories.Store) MonthlyBalanceServiceInterface
	Recompute(ctx context.Context, userID uuid.UUID, period models.Period) (*models.MonthlyBalance, error)
	RecomputeRange(ctx context.Context, userID uuid.UUID, from, through models.Period) error
	AccumulatedUntil(ctx context.Context, userID uuid.UUID, period models.Period) (decimal.Decimal, error)
	GetMonthlyBalance(ctx context.Context, userID uuid.UUID, period models.Period) (*models.MonthlyBalance, error)
}

type StatisticsServiceInterface interface {
	Monthly(ctx context.Context, userID uuid.UUID, month, year int) (*models.MonthlyStatistics, error)
	Annual(ctx context.Context, userID uuid.UUID, year int) (*models.AnnualStatistics, error)
	Trend(ctx context.Context, userID uuid.UUID) (*models.TrendStatistics, error)
	ByCategory(ctx context.Context, userID uuid.UUID, month, year int) ([]models.CategoryTotal, error)
}

type ChecklistServiceInterface interface {
	Monthly(ctx context.Context, userID uuid.UUID, month, year int) (*models.MonthlyChecklist, error)
	BulkUpdate(ctx context.Context, userID uuid.UUID, period models.Period, items []ChecklistToggle) (*dto.ChecklistBulkResponse, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type AuditLoggerInterface interface {
	LogStatementEntryRecorded(ctx context.Context, cardID, statementID, entryID uuid.UUID, kind, amount string)
	LogStatementEntryMoved(ctx context.Context, entryID, fromStatementID, toStatementID uuid.UUID)
	LogStatementEntryDeleted(ctx context.Context, cardID, statementID, entryID uuid.UUID)
	LogStatementAdjusted(ctx context.Context, cardID, statementID uuid.UUID, override, adjustment string)
	LogStatementResynced(ctx context.Context, statementID uuid.UUID, totalPaid string)
	LogBalanceRecomputed(ctx context.Context, userID uuid.UUID, period string, current, accumulated string)
	LogBalanceCascade(ctx context.Context, userID uuid.UUID, from, through string, months int)
	LogChecklistUpdated(ctx context.Context, userID uuid.UUID, competence string, updated int)
	LogLedgerEntryChanged(ctx context.Context, userID, entryID uuid.UUID, operation string)
}
