package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/nando-castro/api-financas/internal/database"
	"github.com/nando-castro/api-financas/internal/models"
	"github.com/nando-castro/api-financas/internal/repositories"
)

// storeSuite backs service tests with an in-memory sqlite store.
type storeSuite struct {
	suite.Suite
	ctx    context.Context
	db     *database.DB
	store  repositories.Store
	logger *slog.Logger
	audit  AuditLoggerInterface
	userID uuid.UUID
	other  uuid.UUID
}

func (s *storeSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = database.SetupTestDB(s.T())
	s.store = repositories.NewStore(s.db.DB)
	s.logger = slog.Default()
	s.audit = NewAuditLogger(s.logger)
	s.userID = database.CreateTestUser(s.T(), s.db, "owner@example.com").ID
	s.other = uuid.Nil
}

func (s *storeSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// otherUser lazily creates a second account.
func (s *storeSuite) otherUser() uuid.UUID {
	if s.other == uuid.Nil {
		s.other = database.CreateTestUser(s.T(), s.db, "intruder@example.com").ID
	}
	return s.other
}

func (s *storeSuite) createCard(userID uuid.UUID, limit int64, closing, due *int) *models.Card {
	card := &models.Card{
		Name:       "Nubank",
		BaseLimit:  decimal.NewFromInt(limit),
		ClosingDay: closing,
		DueDay:     due,
		UserID:     userID,
	}
	s.Require().NoError(s.store.Cards().Create(s.ctx, card))
	return card
}

func (s *storeSuite) createCategory(userID uuid.UUID, name string) *models.Category {
	category := &models.Category{Name: name, UserID: userID}
	s.Require().NoError(s.store.Categories().Create(s.ctx, category))
	return category
}

func (s *storeSuite) createEntry(entry *models.LedgerEntry) *models.LedgerEntry {
	if entry.UserID == uuid.Nil {
		entry.UserID = s.userID
	}
	s.Require().NoError(s.store.LedgerEntries().Create(s.ctx, entry))
	return entry
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y, m, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func decPtrOf(v string) *decimal.Decimal {
	d := dec(v)
	return &d
}
