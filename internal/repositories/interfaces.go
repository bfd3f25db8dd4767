package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nando-castro/api-financas/internal/models"
)

// Store hands out repositories bound to one database handle. Transaction
// runs fn with a Store whose repositories all share a single transaction.
type Store interface {
	Users() UserRepositoryInterface
	RefreshTokens() RefreshTokenRepositoryInterface
	BlacklistedTokens() BlacklistedTokenRepositoryInterface
	AuditLogs() AuditLogRepositoryInterface
	Categories() CategoryRepositoryInterface
	Cards() CardRepositoryInterface
	Statements() StatementRepositoryInterface
	StatementEntries() StatementEntryRepositoryInterface
	LedgerEntries() LedgerEntryRepositoryInterface
	MonthlyBalances() MonthlyBalanceRepositoryInterface
	ChecklistChecks() ChecklistCheckRepositoryInterface
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByResetTokenHash(ctx context.Context, tokenHash string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

type RefreshTokenRepositoryInterface interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, tokenID uuid.UUID) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type BlacklistedTokenRepositoryInterface interface {
	Create(ctx context.Context, token *models.BlacklistedToken) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
	DeleteExpired(ctx context.Context) (int64, error)
}

type AuditLogRepositoryInterface interface {
	Create(ctx context.Context, log *models.AuditLog) error
	GetByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
}

type CategoryRepositoryInterface interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Category, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CardRepositoryInterface interface {
	Create(ctx context.Context, card *models.Card) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Card, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Card, error)
	Update(ctx context.Context, card *models.Card) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type StatementRepositoryInterface interface {
	GetOrCreate(ctx context.Context, cardID uuid.UUID, period models.Period) (*models.Statement, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Statement, error)
	ListByCard(ctx context.Context, cardID uuid.UUID) ([]models.Statement, error)
	LatestOverrideBefore(ctx context.Context, cardID uuid.UUID, period models.Period) (*models.Statement, error)
	Update(ctx context.Context, statement *models.Statement) error
	SetCachedTotalPaid(ctx context.Context, id uuid.UUID, total decimal.Decimal) error
	DeleteByCard(ctx context.Context, cardID uuid.UUID) error
}

type StatementEntryRepositoryInterface interface {
	Create(ctx context.Context, entry *models.StatementEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.StatementEntry, error)
	ListByStatement(ctx context.Context, statementID uuid.UUID) ([]models.StatementEntry, error)
	ListByStatements(ctx context.Context, statementIDs []uuid.UUID) ([]models.StatementEntry, error)
	Update(ctx context.Context, entry *models.StatementEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByStatements(ctx context.Context, statementIDs []uuid.UUID) error
}

// LedgerFilter narrows ListByKind. Nil fields are not applied.
type LedgerFilter struct {
	Kind       string
	Period     *models.Period
	CategoryID *uuid.UUID
}

type LedgerEntryRepositoryInterface interface {
	Create(ctx context.Context, entry *models.LedgerEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.LedgerEntry, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.LedgerEntry, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.LedgerEntry, error)
	ListByKind(ctx context.Context, userID uuid.UUID, filter LedgerFilter) ([]models.LedgerEntry, error)
	ListActiveInPeriod(ctx context.Context, userID uuid.UUID, period models.Period) ([]models.LedgerEntry, error)
	Update(ctx context.Context, entry *models.LedgerEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	ClearCategory(ctx context.Context, categoryID uuid.UUID) error
	DetachCard(ctx context.Context, cardID uuid.UUID) error
}

type MonthlyBalanceRepositoryInterface interface {
	Get(ctx context.Context, userID uuid.UUID, period models.Period) (*models.MonthlyBalance, error)
	Upsert(ctx context.Context, balance *models.MonthlyBalance) error
	LatestPeriod(ctx context.Context, userID uuid.UUID) (*models.Period, error)
}

type ChecklistCheckRepositoryInterface interface {
	ListByCompetence(ctx context.Context, userID uuid.UUID, competence string) ([]models.ChecklistCheck, error)
	Upsert(ctx context.Context, checks []models.ChecklistCheck) error
	DeleteByLedgerEntry(ctx context.Context, ledgerEntryID uuid.UUID) error
}
