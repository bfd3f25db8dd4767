package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/nando-castro/api-financas/internal/models"
	"github.com/nando-castro/api-financas/internal/repositories"
)

type StatementServiceTestSuite struct {
	storeSuite
	service StatementServiceInterface
	card    *models.Card
}

func TestStatementServiceSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}

func (s *StatementServiceTestSuite) SetupTest() {
	s.storeSuite.SetupTest()
	s.service = NewStatementService(s.store, s.audit, NoopMetrics{}, s.logger)
	s.card = s.createCard(s.userID, 1000, intPtr(5), intPtr(15))
}

func (s *StatementServiceTestSuite) record(kind, amount string, y, m, d int) *models.StatementEntry {
	entry, err := s.service.RecordTransaction(s.ctx, s.userID, s.card.ID, RecordEntryInput{
		Kind:   kind,
		Date:   date(y, m, d),
		Amount: dec(amount),
	})
	s.Require().NoError(err)
	return entry
}

func (s *StatementServiceTestSuite) detail(y, m int) *models.StatementDetail {
	detail, err := s.service.GetStatementDetail(s.ctx, s.userID, s.card.ID, models.Period{Year: y, Month: m})
	s.Require().NoError(err)
	return detail
}

func (s *StatementServiceTestSuite) TestRecordTransaction_SplitsPurchasesAcrossClosingDay() {
	first := s.record(models.StatementEntryPurchase, "300", 2025, 1, 3)
	second := s.record(models.StatementEntryPurchase, "300", 2025, 1, 10)

	s.Equal(date(2025, 1, 15), first.PostingDate)
	s.Equal(date(2025, 2, 15), second.PostingDate)
	s.NotEqual(first.StatementID, second.StatementID)

	jan := s.detail(2025, 1)
	s.True(dec("300").Equal(jan.Statement.StatementValue))
	s.True(dec("600").Equal(jan.Statement.UtilizedLimit))
	s.True(dec("400").Equal(jan.Statement.AvailableLimit))
	s.True(dec("1000").Equal(jan.Statement.EffectiveLimit))
	s.Len(jan.Entries, 1)

	feb := s.detail(2025, 2)
	s.True(dec("300").Equal(feb.Statement.OpenBalance))
	s.True(dec("600").Equal(feb.Statement.UtilizedLimit))
}

func (s *StatementServiceTestSuite) TestRecordTransaction_PaymentUsesRequestedStatement() {
	s.record(models.StatementEntryPurchase, "300", 2025, 1, 3)

	period := models.Period{Year: 2025, Month: 1}
	pay, err := s.service.RecordTransaction(s.ctx, s.userID, s.card.ID, RecordEntryInput{
		Kind:   models.StatementEntryPayment,
		Date:   date(2025, 2, 10),
		Amount: dec("100"),
		Period: &period,
	})
	s.Require().NoError(err)
	s.Equal(date(2025, 2, 10), pay.PostingDate)

	jan := s.detail(2025, 1)
	s.True(dec("100").Equal(jan.Statement.TotalPayments))
	s.True(dec("200").Equal(jan.Statement.OpenBalance))
	s.True(dec("800").Equal(jan.Statement.AvailableLimit))

	st, err := s.store.Statements().GetByID(s.ctx, jan.Statement.ID)
	s.Require().NoError(err)
	s.True(dec("100").Equal(st.CachedTotalPaid))
}

func (s *StatementServiceTestSuite) TestRecordTransaction_PaymentDefaultsToDateMonth() {
	pay := s.record(models.StatementEntryPayment, "50", 2025, 3, 20)

	st, err := s.store.Statements().GetByID(s.ctx, pay.StatementID)
	s.Require().NoError(err)
	s.Equal(models.Period{Year: 2025, Month: 3}, st.Period())
}

func (s *StatementServiceTestSuite) TestRecordTransaction_RejectsInvalidInput() {
	_, err := s.service.RecordTransaction(s.ctx, s.userID, s.card.ID, RecordEntryInput{
		Kind:   "REFUND",
		Date:   date(2025, 1, 1),
		Amount: dec("10"),
	})
	s.ErrorIs(err, models.ErrInvalidStatementEntryKind)

	_, err = s.service.RecordTransaction(s.ctx, s.userID, s.card.ID, RecordEntryInput{
		Kind:   models.StatementEntryPurchase,
		Date:   date(2025, 1, 1),
		Amount: dec("0"),
	})
	s.ErrorIs(err, models.ErrInvalidAmount)
}

func (s *StatementServiceTestSuite) TestRecordTransaction_OtherUsersCardIsNotFound() {
	_, err := s.service.RecordTransaction(s.ctx, s.otherUser(), s.card.ID, RecordEntryInput{
		Kind:   models.StatementEntryPurchase,
		Date:   date(2025, 1, 1),
		Amount: dec("10"),
	})
	s.ErrorIs(err, repositories.ErrCardNotFound)
}

func (s *StatementServiceTestSuite) TestEditTransaction_MovesPurchaseToNewStatement() {
	entry := s.record(models.StatementEntryPurchase, "300", 2025, 1, 3)
	oldStatement := entry.StatementID

	edited, err := s.service.EditTransaction(s.ctx, s.userID, s.card.ID, entry.ID, EditEntryInput{
		Date: datePtr(2025, 1, 20),
	})
	s.Require().NoError(err)

	s.NotEqual(oldStatement, edited.StatementID)
	s.Equal(date(2025, 2, 15), edited.PostingDate)

	s.Empty(s.detail(2025, 1).Entries)
	s.Len(s.detail(2025, 2).Entries, 1)
}

func (s *StatementServiceTestSuite) cachedTotalPaid(statementID uuid.UUID) decimal.Decimal {
	st, err := s.store.Statements().GetByID(s.ctx, statementID)
	s.Require().NoError(err)
	return st.CachedTotalPaid
}

func (s *StatementServiceTestSuite) TestEditTransaction_PaymentTurnedPurchaseResyncsBothStatements() {
	s.record(models.StatementEntryPurchase, "300", 2025, 1, 3)
	pay := s.record(models.StatementEntryPayment, "100", 2025, 1, 4)
	oldStatement := pay.StatementID
	s.True(dec("100").Equal(s.cachedTotalPaid(oldStatement)))

	edited, err := s.service.EditTransaction(s.ctx, s.userID, s.card.ID, pay.ID, EditEntryInput{
		Kind: strPtr(models.StatementEntryPurchase),
		Date: datePtr(2025, 1, 20),
	})
	s.Require().NoError(err)
	s.NotEqual(oldStatement, edited.StatementID)

	s.True(s.cachedTotalPaid(oldStatement).IsZero(), "old statement keeps no payment")
	s.True(s.cachedTotalPaid(edited.StatementID).IsZero())

	impl := s.service.(*statementService)
	for _, id := range []uuid.UUID{oldStatement, edited.StatementID} {
		before := s.cachedTotalPaid(id)
		total, err := impl.resync(s.ctx, s.store, id)
		s.Require().NoError(err)
		s.True(before.Equal(total))
		s.True(before.Equal(s.cachedTotalPaid(id)))
	}
}

func (s *StatementServiceTestSuite) TestEditTransaction_PurchaseTurnedPaymentRaisesCache() {
	entry := s.record(models.StatementEntryPurchase, "300", 2025, 1, 3)

	edited, err := s.service.EditTransaction(s.ctx, s.userID, s.card.ID, entry.ID, EditEntryInput{
		Kind: strPtr(models.StatementEntryPayment),
	})
	s.Require().NoError(err)

	s.Equal(entry.StatementID, edited.StatementID)
	s.True(dec("300").Equal(s.cachedTotalPaid(entry.StatementID)))
}

func (s *StatementServiceTestSuite) TestEditTransaction_PaymentKeepsStatement() {
	pay := s.record(models.StatementEntryPayment, "50", 2025, 3, 20)

	edited, err := s.service.EditTransaction(s.ctx, s.userID, s.card.ID, pay.ID, EditEntryInput{
		Date:   datePtr(2025, 5, 2),
		Amount: decPtrOf("75"),
	})
	s.Require().NoError(err)

	s.Equal(pay.StatementID, edited.StatementID)
	s.Equal(date(2025, 5, 2), edited.PostingDate)
	s.True(dec("75").Equal(s.detail(2025, 3).Statement.TotalPayments))
}

func (s *StatementServiceTestSuite) TestEditTransaction_EntryOfAnotherCard() {
	other := s.createCard(s.userID, 500, nil, nil)
	entry := s.record(models.StatementEntryPurchase, "10", 2025, 1, 3)

	_, err := s.service.EditTransaction(s.ctx, s.userID, other.ID, entry.ID, EditEntryInput{Amount: decPtrOf("20")})
	s.ErrorIs(err, repositories.ErrStatementEntryNotFound)
}

func (s *StatementServiceTestSuite) TestDeleteTransaction_ResyncsStatement() {
	s.record(models.StatementEntryPurchase, "300", 2025, 1, 3)
	pay := s.record(models.StatementEntryPayment, "100", 2025, 1, 4)

	s.True(dec("100").Equal(s.cachedTotalPaid(pay.StatementID)))

	s.Require().NoError(s.service.DeleteTransaction(s.ctx, s.userID, s.card.ID, pay.ID))
	s.True(s.cachedTotalPaid(pay.StatementID).IsZero())

	jan := s.detail(2025, 1)
	s.True(jan.Statement.TotalPayments.IsZero())
	s.True(dec("300").Equal(jan.Statement.OpenBalance))

	err := s.service.DeleteTransaction(s.ctx, s.userID, s.card.ID, pay.ID)
	s.ErrorIs(err, repositories.ErrStatementEntryNotFound)
}

func (s *StatementServiceTestSuite) TestAdjustStatement_OverrideCarriesForward() {
	override := dec("2000")
	adjustment := dec("25")

	st, err := s.service.AdjustStatement(s.ctx, s.userID, s.card.ID, AdjustStatementInput{
		Period:             models.Period{Year: 2025, Month: 2},
		MonthLimitOverride: &override,
		Adjustment:         &adjustment,
	})
	s.Require().NoError(err)
	s.True(override.Equal(*st.MonthLimitOverride))

	feb := s.detail(2025, 2)
	s.True(dec("25").Equal(feb.Statement.StatementValue))
	s.True(dec("2000").Equal(feb.Statement.EffectiveLimit))

	// later months inherit the latest earlier override
	s.True(dec("2000").Equal(s.detail(2025, 6).Statement.EffectiveLimit))
	// earlier months keep the base limit
	s.True(dec("1000").Equal(s.detail(2025, 1).Statement.EffectiveLimit))
}

func (s *StatementServiceTestSuite) TestAdjustStatement_RejectsNegativeOverride() {
	negative := dec("-1")
	_, err := s.service.AdjustStatement(s.ctx, s.userID, s.card.ID, AdjustStatementInput{
		Period:             models.Period{Year: 2025, Month: 2},
		MonthLimitOverride: &negative,
	})
	s.ErrorIs(err, models.ErrNegativeLimit)
}

func (s *StatementServiceTestSuite) TestGetStatementDetail_InvalidPeriod() {
	_, err := s.service.GetStatementDetail(s.ctx, s.userID, s.card.ID, models.Period{Year: 2025, Month: 13})
	s.ErrorIs(err, models.ErrInvalidPeriod)
}

func (s *StatementServiceTestSuite) TestGetCardBalances_ListsEveryCard() {
	s.record(models.StatementEntryPurchase, "300", 2025, 1, 3)
	second := s.createCard(s.userID, 500, nil, nil)
	_, err := s.service.RecordTransaction(s.ctx, s.userID, second.ID, RecordEntryInput{
		Kind:   models.StatementEntryPurchase,
		Date:   date(2025, 1, 20),
		Amount: dec("120"),
	})
	s.Require().NoError(err)

	balances, err := s.service.GetCardBalances(s.ctx, s.userID, models.Period{Year: 2025, Month: 1})
	s.Require().NoError(err)
	s.Len(balances, 2)

	byCard := make(map[uuid.UUID]models.CardBalance)
	for _, b := range balances {
		byCard[b.CardID] = b
	}
	s.True(dec("700").Equal(byCard[s.card.ID].AvailableLimit))
	s.True(dec("380").Equal(byCard[second.ID].AvailableLimit))
	s.True(dec("120").Equal(byCard[second.ID].StatementValue))
}
