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

func TestStatementRepositories(t *testing.T) {
	suite.Run(t, new(StatementRepositorySuite))
}

type StatementRepositorySuite struct {
	suite.Suite
	ctx     context.Context
	db      *database.DB
	store   Store
	card    *models.Card
	userID  uuid.UUID
	closing int
	due     int
}

func (s *StatementRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.db = database.SetupTestDB(s.T())
	s.store = NewStore(s.db.DB)
	s.userID = database.CreateTestUser(s.T(), s.db, "cards@example.com").ID
	s.closing, s.due = 5, 15

	s.card = &models.Card{
		Name:       "Nubank",
		BaseLimit:  decimal.NewFromInt(1000),
		ClosingDay: &s.closing,
		DueDay:     &s.due,
		UserID:     s.userID,
	}
	s.Require().NoError(s.store.Cards().Create(s.ctx, s.card))
}

func (s *StatementRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *StatementRepositorySuite) TestGetOrCreate_IsIdempotent() {
	period := models.Period{Year: 2025, Month: 3}

	first, err := s.store.Statements().GetOrCreate(s.ctx, s.card.ID, period)
	s.Require().NoError(err)
	second, err := s.store.Statements().GetOrCreate(s.ctx, s.card.ID, period)
	s.Require().NoError(err)

	s.Equal(first.ID, second.ID)
	s.True(second.Adjustment.IsZero())
	s.Nil(second.MonthLimitOverride)

	all, err := s.store.Statements().ListByCard(s.ctx, s.card.ID)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *StatementRepositorySuite) TestLatestOverrideBefore() {
	repo := s.store.Statements()

	for _, p := range []struct {
		period   models.Period
		override *decimal.Decimal
	}{
		{models.Period{Year: 2024, Month: 11}, decPtr("1500")},
		{models.Period{Year: 2025, Month: 1}, decPtr("2000")},
		{models.Period{Year: 2025, Month: 2}, nil},
		{models.Period{Year: 2025, Month: 4}, decPtr("3000")},
	} {
		st, err := repo.GetOrCreate(s.ctx, s.card.ID, p.period)
		s.Require().NoError(err)
		st.MonthLimitOverride = p.override
		s.Require().NoError(repo.Update(s.ctx, st))
	}

	prior, err := repo.LatestOverrideBefore(s.ctx, s.card.ID, models.Period{Year: 2025, Month: 3})
	s.Require().NoError(err)
	s.Require().NotNil(prior)
	s.Equal(1, prior.Month)
	s.True(prior.MonthLimitOverride.Equal(decimal.NewFromInt(2000)))

	prior, err = repo.LatestOverrideBefore(s.ctx, s.card.ID, models.Period{Year: 2025, Month: 1})
	s.Require().NoError(err)
	s.Require().NotNil(prior)
	s.Equal(2024, prior.Year)

	prior, err = repo.LatestOverrideBefore(s.ctx, s.card.ID, models.Period{Year: 2024, Month: 11})
	s.Require().NoError(err)
	s.Nil(prior)
}

func (s *StatementRepositorySuite) TestEntries_OrderAndTotals() {
	st, err := s.store.Statements().GetOrCreate(s.ctx, s.card.ID, models.Period{Year: 2025, Month: 3})
	s.Require().NoError(err)

	entries := s.store.StatementEntries()
	older := &models.StatementEntry{StatementID: st.ID, Kind: models.StatementEntryPayment, Amount: decimal.NewFromInt(50), PostingDate: day(2025, 3, 2)}
	newer := &models.StatementEntry{StatementID: st.ID, Kind: models.StatementEntryPurchase, Amount: decimal.NewFromInt(200), PostingDate: day(2025, 3, 15)}
	s.Require().NoError(entries.Create(s.ctx, older))
	s.Require().NoError(entries.Create(s.ctx, newer))

	listed, err := entries.ListByStatement(s.ctx, st.ID)
	s.Require().NoError(err)
	s.Require().Len(listed, 2)
	s.Equal(newer.ID, listed[0].ID)
	s.Equal(older.ID, listed[1].ID)

	s.Require().NoError(s.store.Statements().SetCachedTotalPaid(s.ctx, st.ID, decimal.NewFromInt(50)))
	reloaded, err := s.store.Statements().GetByID(s.ctx, st.ID)
	s.Require().NoError(err)
	s.True(reloaded.CachedTotalPaid.Equal(decimal.NewFromInt(50)))

	s.Require().NoError(entries.Delete(s.ctx, older.ID))
	s.ErrorIs(entries.Delete(s.ctx, older.ID), ErrStatementEntryNotFound)
}

func (s *StatementRepositorySuite) TestTransaction_RollsBack() {
	period := models.Period{Year: 2025, Month: 6}

	err := s.store.Transaction(s.ctx, func(tx Store) error {
		if _, err := tx.Statements().GetOrCreate(s.ctx, s.card.ID, period); err != nil {
			return err
		}
		return ErrStatementNotFound
	})
	s.ErrorIs(err, ErrStatementNotFound)

	all, err := s.store.Statements().ListByCard(s.ctx, s.card.ID)
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *StatementRepositorySuite) TestDeleteCardCascade() {
	st, err := s.store.Statements().GetOrCreate(s.ctx, s.card.ID, models.Period{Year: 2025, Month: 3})
	s.Require().NoError(err)
	s.Require().NoError(s.store.StatementEntries().Create(s.ctx, &models.StatementEntry{
		StatementID: st.ID, Kind: models.StatementEntryPurchase, Amount: decimal.NewFromInt(10), PostingDate: day(2025, 3, 15),
	}))

	s.Require().NoError(s.store.StatementEntries().DeleteByStatements(s.ctx, []uuid.UUID{st.ID}))
	s.Require().NoError(s.store.Statements().DeleteByCard(s.ctx, s.card.ID))
	s.Require().NoError(s.store.Cards().Delete(s.ctx, s.card.ID))

	_, err = s.store.Cards().GetByID(s.ctx, s.card.ID)
	s.ErrorIs(err, ErrCardNotFound)
	_, err = s.store.Statements().GetByID(s.ctx, st.ID)
	s.ErrorIs(err, ErrStatementNotFound)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func decPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}
