package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/nando-castro/api-financas/internal/database"
	"github.com/nando-castro/api-financas/internal/models"
)

func TestLedgerRepositories(t *testing.T) {
	suite.Run(t, new(LedgerRepositorySuite))
}

type LedgerRepositorySuite struct {
	suite.Suite
	ctx    context.Context
	db     *database.DB
	store  Store
	userID uuid.UUID
}

func (s *LedgerRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.db = database.SetupTestDB(s.T())
	s.store = NewStore(s.db.DB)
	s.userID = database.CreateTestUser(s.T(), s.db, "ledger@example.com").ID
}

func (s *LedgerRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *LedgerRepositorySuite) entry(name, kind string, start time.Time, end *time.Time) *models.LedgerEntry {
	e := &models.LedgerEntry{
		Name:      name,
		Kind:      kind,
		Amount:    decimal.NewFromInt(100),
		StartDate: start,
		EndDate:   end,
		UserID:    s.userID,
	}
	s.Require().NoError(s.store.LedgerEntries().Create(s.ctx, e))
	return e
}

func (s *LedgerRepositorySuite) TestListActiveInPeriod() {
	febEnd := day(2025, 2, 28)
	s.entry("salary", models.EntryKindIncome, day(2025, 1, 5), nil)
	s.entry("course", models.EntryKindExpense, day(2025, 1, 20), &febEnd)
	s.entry("trip", models.EntryKindExpense, day(2025, 4, 1), nil)

	active, err := s.store.LedgerEntries().ListActiveInPeriod(s.ctx, s.userID, models.Period{Year: 2025, Month: 2})
	s.Require().NoError(err)
	s.Len(active, 2)

	active, err = s.store.LedgerEntries().ListActiveInPeriod(s.ctx, s.userID, models.Period{Year: 2025, Month: 3})
	s.Require().NoError(err)
	s.Require().Len(active, 1)
	s.Equal("salary", active[0].Name)

	active, err = s.store.LedgerEntries().ListActiveInPeriod(s.ctx, s.userID, models.Period{Year: 2024, Month: 12})
	s.Require().NoError(err)
	s.Empty(active)
}

func (s *LedgerRepositorySuite) TestListByKind_Filters() {
	category := &models.Category{Name: "Casa", UserID: s.userID}
	s.Require().NoError(s.store.Categories().Create(s.ctx, category))

	marEnd := day(2025, 3, 10)
	rent := s.entry("rent", models.EntryKindExpense, day(2025, 1, 10), nil)
	rent.CategoryID = &category.ID
	s.Require().NoError(s.store.LedgerEntries().Update(s.ctx, rent))
	s.entry("phone", models.EntryKindExpense, day(2025, 2, 1), &marEnd)
	s.entry("bonus", models.EntryKindIncome, day(2025, 3, 1), &marEnd)

	march := models.Period{Year: 2025, Month: 3}
	expenses, err := s.store.LedgerEntries().ListByKind(s.ctx, s.userID, LedgerFilter{Kind: models.EntryKindExpense, Period: &march})
	s.Require().NoError(err)
	s.Len(expenses, 2)

	april := models.Period{Year: 2025, Month: 4}
	expenses, err = s.store.LedgerEntries().ListByKind(s.ctx, s.userID, LedgerFilter{Kind: models.EntryKindExpense, Period: &april})
	s.Require().NoError(err)
	s.Require().Len(expenses, 1)
	s.Equal(rent.ID, expenses[0].ID)

	byCategory, err := s.store.LedgerEntries().ListByKind(s.ctx, s.userID, LedgerFilter{Kind: models.EntryKindExpense, CategoryID: &category.ID})
	s.Require().NoError(err)
	s.Len(byCategory, 1)

	s.Require().NoError(s.store.LedgerEntries().ClearCategory(s.ctx, category.ID))
	byCategory, err = s.store.LedgerEntries().ListByKind(s.ctx, s.userID, LedgerFilter{Kind: models.EntryKindExpense, CategoryID: &category.ID})
	s.Require().NoError(err)
	s.Empty(byCategory)
}

func (s *LedgerRepositorySuite) TestDetachCard() {
	card := &models.Card{Name: "Visa", BaseLimit: decimal.NewFromInt(100), UserID: s.userID}
	s.Require().NoError(s.store.Cards().Create(s.ctx, card))

	method := models.PaymentMethodCard
	e := s.entry("gym", models.EntryKindExpense, day(2025, 1, 1), nil)
	e.PaymentMethod = &method
	e.CardID = &card.ID
	s.Require().NoError(s.store.LedgerEntries().Update(s.ctx, e))

	s.Require().NoError(s.store.LedgerEntries().DetachCard(s.ctx, card.ID))

	reloaded, err := s.store.LedgerEntries().GetByID(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Nil(reloaded.CardID)
	s.Nil(reloaded.PaymentMethod)
}

func (s *LedgerRepositorySuite) TestMonthlyBalanceUpsert() {
	repo := s.store.MonthlyBalances()
	period := models.Period{Year: 2025, Month: 2}

	latest, err := repo.LatestPeriod(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Nil(latest)

	first := &models.MonthlyBalance{
		UserID: s.userID, Year: 2025, Month: 2,
		TotalIncome: decimal.NewFromInt(100), CurrentBalance: decimal.NewFromInt(100), AccumulatedBalance: decimal.NewFromInt(100),
	}
	s.Require().NoError(repo.Upsert(s.ctx, first))
	second := &models.MonthlyBalance{
		UserID: s.userID, Year: 2025, Month: 2,
		TotalIncome: decimal.NewFromInt(300), CurrentBalance: decimal.NewFromInt(300), AccumulatedBalance: decimal.NewFromInt(450),
	}
	s.Require().NoError(repo.Upsert(s.ctx, second))
	s.Equal(first.ID, second.ID, "update keeps the stored row identity")
	s.True(second.TotalIncome.Equal(decimal.NewFromInt(300)))
	s.Require().NoError(repo.Upsert(s.ctx, &models.MonthlyBalance{UserID: s.userID, Year: 2024, Month: 12}))

	stored, err := repo.Get(s.ctx, s.userID, period)
	s.Require().NoError(err)
	s.Equal(first.ID, stored.ID)
	s.True(stored.TotalIncome.Equal(decimal.NewFromInt(300)))
	s.True(stored.AccumulatedBalance.Equal(decimal.NewFromInt(450)))

	latest, err = repo.LatestPeriod(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Equal(&period, latest)

	_, err = repo.Get(s.ctx, s.userID, models.Period{Year: 2025, Month: 3})
	s.ErrorIs(err, ErrMonthlyBalanceNotFound)
}

func (s *LedgerRepositorySuite) TestChecklistUpsert() {
	repo := s.store.ChecklistChecks()
	e := s.entry("internet", models.EntryKindExpense, day(2025, 1, 1), nil)
	now := time.Now().UTC()

	s.Require().NoError(repo.Upsert(s.ctx, []models.ChecklistCheck{
		{UserID: s.userID, LedgerEntryID: e.ID, Competence: "2025-03", Checked: true, CheckedAt: &now},
	}))
	s.Require().NoError(repo.Upsert(s.ctx, []models.ChecklistCheck{
		{UserID: s.userID, LedgerEntryID: e.ID, Competence: "2025-03", Checked: false},
		{UserID: s.userID, LedgerEntryID: e.ID, Competence: "2025-04", Checked: true, CheckedAt: &now},
	}))

	march, err := repo.ListByCompetence(s.ctx, s.userID, "2025-03")
	s.Require().NoError(err)
	s.Require().Len(march, 1)
	s.False(march[0].Checked)
	s.Nil(march[0].CheckedAt)

	s.Require().NoError(repo.DeleteByLedgerEntry(s.ctx, e.ID))
	april, err := repo.ListByCompetence(s.ctx, s.userID, "2025-04")
	s.Require().NoError(err)
	s.Empty(april)
}
