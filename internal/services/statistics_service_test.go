package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/nando-castro/api-financas/internal/models"
)

type StatisticsServiceTestSuite struct {
	storeSuite
	service StatisticsServiceInterface
}

func TestStatisticsServiceSuite(t *testing.T) {
	suite.Run(t, new(StatisticsServiceTestSuite))
}

func (s *StatisticsServiceTestSuite) SetupTest() {
	s.storeSuite.SetupTest()
	s.service = NewStatisticsService(s.store, s.logger, fixedClock(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)))

	food := s.createCategory(s.userID, "Food")
	s.createEntry(&models.LedgerEntry{
		Name: "Salary", Kind: models.EntryKindIncome, Amount: dec("5000"), StartDate: date(2025, 1, 5),
	})
	s.createEntry(&models.LedgerEntry{
		Name: "Rent", Kind: models.EntryKindExpense, Amount: dec("2000"), StartDate: date(2025, 1, 10),
	})
	s.createEntry(&models.LedgerEntry{
		Name: "Groceries", Kind: models.EntryKindExpense, Amount: dec("1000"),
		StartDate: date(2025, 3, 2), EndDate: datePtr(2025, 3, 30), CategoryID: &food.ID,
	})
	s.createEntry(&models.LedgerEntry{
		Name: "Restaurant", Kind: models.EntryKindExpense, Amount: dec("250"),
		StartDate: date(2025, 3, 15), EndDate: datePtr(2025, 3, 15), CategoryID: &food.ID,
	})
}

func (s *StatisticsServiceTestSuite) TestMonthly() {
	stats, err := s.service.Monthly(s.ctx, s.userID, 2, 2025)
	s.Require().NoError(err)

	s.Equal("February", stats.Month)
	s.Equal(2025, stats.Year)
	s.True(dec("3000").Equal(stats.Balance))
	s.True(dec("3000").Equal(stats.PreviousBalance))
	s.True(dec("6000").Equal(stats.AccumulatedBalance))
	s.Equal("60.00%", stats.SavingsPercent)
	s.Equal(RecommendationPositive, stats.Recommendation)
}

func (s *StatisticsServiceTestSuite) TestMonthly_DefaultsToClockMonth() {
	stats, err := s.service.Monthly(s.ctx, s.userID, 0, 0)
	s.Require().NoError(err)

	s.Equal("March", stats.Month)
	s.True(dec("3250").Equal(stats.TotalExpense))
	s.True(dec("1750").Equal(stats.Balance))
	s.Equal("35.00%", stats.SavingsPercent)
}

func (s *StatisticsServiceTestSuite) TestMonthly_NoIncome() {
	stats, err := s.service.Monthly(s.ctx, s.userID, 6, 2024)
	s.Require().NoError(err)
	s.Equal("0%", stats.SavingsPercent)
	s.Equal(RecommendationBalanced, stats.Recommendation)
}

func (s *StatisticsServiceTestSuite) TestAnnual_CarriesAccumulatedBalance() {
	annual, err := s.service.Annual(s.ctx, s.userID, 2025)
	s.Require().NoError(err)
	s.Require().Len(annual.Months, 12)

	s.Equal("January", annual.Months[0].Month)
	s.True(annual.Months[0].PreviousBalance.IsZero())
	s.True(dec("3000").Equal(annual.Months[0].AccumulatedBalance))
	s.True(dec("6000").Equal(annual.Months[2].PreviousBalance))
	s.True(dec("7750").Equal(annual.Months[2].AccumulatedBalance))
	s.True(dec("34750").Equal(annual.Months[11].AccumulatedBalance))

	next, err := s.service.Annual(s.ctx, s.userID, 2026)
	s.Require().NoError(err)
	s.True(dec("34750").Equal(next.Months[0].PreviousBalance))
}

func (s *StatisticsServiceTestSuite) TestTrend() {
	trend, err := s.service.Trend(s.ctx, s.userID)
	s.Require().NoError(err)

	s.Equal(models.TrendNegative, trend.Trend)
	s.True(dec("1750").Equal(trend.CurrentBalance))
	s.True(dec("3000").Equal(trend.PreviousBalance))
	s.Equal("-41.67%", trend.ChangePercent)
}

func (s *StatisticsServiceTestSuite) TestByCategory() {
	totals, err := s.service.ByCategory(s.ctx, s.userID, 3, 2025)
	s.Require().NoError(err)
	s.Require().Len(totals, 3)

	s.Equal(models.EntryKindExpense, totals[0].Kind)
	s.Equal("Food", totals[0].Category)
	s.True(dec("1250").Equal(totals[0].Total))
	s.Equal(models.UncategorizedLabel, totals[1].Category)
	s.True(dec("2000").Equal(totals[1].Total))
	s.Equal(models.EntryKindIncome, totals[2].Kind)
}

func TestChangePercent(t *testing.T) {
	assert.Equal(t, "+100.00%", changePercent(dec("500"), dec("0")))
	assert.Equal(t, "+100.00%", changePercent(dec("-500"), dec("0")))
	assert.Equal(t, "+50.00%", changePercent(dec("150"), dec("100")))
	assert.Equal(t, "+200.00%", changePercent(dec("100"), dec("-100")))
	assert.Equal(t, "+0.00%", changePercent(dec("100"), dec("100")))
}

func TestSavingsPercent(t *testing.T) {
	assert.Equal(t, "0%", savingsPercent(dec("100"), dec("0")))
	assert.Equal(t, "-50.00%", savingsPercent(dec("-500"), dec("1000")))
	assert.Equal(t, "33.33%", savingsPercent(dec("1"), dec("3")))
}
