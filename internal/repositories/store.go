package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Users() UserRepositoryInterface { return NewUserRepository(s.db) }

func (s *gormStore) RefreshTokens() RefreshTokenRepositoryInterface {
	return NewRefreshTokenRepository(s.db)
}

func (s *gormStore) BlacklistedTokens() BlacklistedTokenRepositoryInterface {
	return NewBlacklistedTokenRepository(s.db)
}

func (s *gormStore) AuditLogs() AuditLogRepositoryInterface { return NewAuditLogRepository(s.db) }

func (s *gormStore) Categories() CategoryRepositoryInterface { return NewCategoryRepository(s.db) }

func (s *gormStore) Cards() CardRepositoryInterface { return NewCardRepository(s.db) }

func (s *gormStore) Statements() StatementRepositoryInterface { return NewStatementRepository(s.db) }

func (s *gormStore) StatementEntries() StatementEntryRepositoryInterface {
	return NewStatementEntryRepository(s.db)
}

func (s *gormStore) LedgerEntries() LedgerEntryRepositoryInterface {
	return NewLedgerEntryRepository(s.db)
}

func (s *gormStore) MonthlyBalances() MonthlyBalanceRepositoryInterface {
	return NewMonthlyBalanceRepository(s.db)
}

func (s *gormStore) ChecklistChecks() ChecklistCheckRepositoryInterface {
	return NewChecklistCheckRepository(s.db)
}

// Transaction commits when fn returns nil and rolls back otherwise.
func (s *gormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}
