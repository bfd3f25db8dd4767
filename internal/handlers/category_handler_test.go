package handlers

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/nando-castro/api-financas/internal/dto"
	apperrors "github.com/nando-castro/api-financas/internal/errors"
	"github.com/nando-castro/api-financas/internal/models"
	"github.com/nando-castro/api-financas/internal/services"
	"github.com/nando-castro/api-financas/internal/services/service_mocks"
)

func TestCategoryHandler(t *testing.T) {
	suite.Run(t, new(CategoryHandlerSuite))
}

type CategoryHandlerSuite struct {
	handlerSuite
	categories *service_mocks.MockCategoryServiceInterface
	handler    *CategoryHandler
}

func (s *CategoryHandlerSuite) SetupTest() {
	s.setup()
	s.categories = service_mocks.NewMockCategoryServiceInterface(s.ctrl)
	s.handler = NewCategoryHandler(s.categories)
}

func (s *CategoryHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CategoryHandlerSuite) TestCreate() {
	s.categories.EXPECT().
		Create(gomock.Any(), s.userID, "Groceries").
		Return(&models.Category{ID: uuid.New(), Name: "Groceries", UserID: s.userID}, nil)

	rec := s.call(s.handler.Create, http.MethodPost, "/categories", dto.CategoryRequest{Name: "Groceries"}, nil)

	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), `"name":"Groceries"`)
	s.NotContains(rec.Body.String(), s.userID.String())
}

func (s *CategoryHandlerSuite) TestCreate_NameRequired() {
	rec := s.call(s.handler.Create, http.MethodPost, "/categories", dto.CategoryRequest{}, nil)

	detail := s.assertError(rec, http.StatusBadRequest, apperrors.ValidationGeneral)
	s.Equal([]string{"name: is required"}, detail.Details)
}

func (s *CategoryHandlerSuite) TestUpdate_OtherUsersCategory() {
	categoryID := uuid.New()
	s.categories.EXPECT().
		Update(gomock.Any(), s.userID, categoryID, "Food").
		Return(nil, services.ErrForbidden)

	rec := s.call(s.handler.Update, http.MethodPut, "/categories/"+categoryID.String(),
		dto.CategoryRequest{Name: "Food"}, params{"id": categoryID.String()})

	s.assertError(rec, http.StatusForbidden, apperrors.AuthInsufficientPermission)
}

func (s *CategoryHandlerSuite) TestDelete() {
	categoryID := uuid.New()
	s.categories.EXPECT().Delete(gomock.Any(), s.userID, categoryID).Return(nil)

	rec := s.call(s.handler.Delete, http.MethodDelete, "/categories/"+categoryID.String(), nil, params{"id": categoryID.String()})

	s.Equal(http.StatusNoContent, rec.Code)
}

func TestChecklistHandler(t *testing.T) {
	suite.Run(t, new(ChecklistHandlerSuite))
}

type ChecklistHandlerSuite struct {
	handlerSuite
	checklist *service_mocks.MockChecklistServiceInterface
	handler   *ChecklistHandler
}

func (s *ChecklistHandlerSuite) SetupTest() {
	s.setup()
	s.checklist = service_mocks.NewMockChecklistServiceInterface(s.ctrl)
	s.handler = NewChecklistHandler(s.checklist)
}

func (s *ChecklistHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ChecklistHandlerSuite) TestMonthly_PassesQuery() {
	s.checklist.EXPECT().
		Monthly(gomock.Any(), s.userID, 4, 2025).
		Return(&models.MonthlyChecklist{Month: 4, Year: 2025, Competence: "2025-04", Items: []models.ChecklistItem{}}, nil)

	rec := s.call(s.handler.Monthly, http.MethodGet, "/checklist/monthly?month=4&year=2025", nil, nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"competence":"2025-04"`)
}

func (s *ChecklistHandlerSuite) TestBulkUpdate() {
	entryID := uuid.New()
	s.checklist.EXPECT().
		BulkUpdate(gomock.Any(), s.userID, models.Period{Year: 2025, Month: 4},
			[]services.ChecklistToggle{{LedgerEntryID: entryID, Checked: true}}).
		Return(&dto.ChecklistBulkResponse{OK: true, Competence: "2025-04", Updated: 1}, nil)

	rec := s.call(s.handler.BulkUpdate, http.MethodPatch, "/checklist/monthly/bulk", dto.ChecklistBulkRequest{
		Month: 4, Year: 2025,
		Items: []dto.ChecklistBulkItem{{LedgerEntryID: entryID.String(), Checked: true}},
	}, nil)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"ok":true,"competence":"2025-04","updated":1}`, rec.Body.String())
}

func (s *ChecklistHandlerSuite) TestBulkUpdate_InvalidItemID() {
	rec := s.call(s.handler.BulkUpdate, http.MethodPatch, "/checklist/monthly/bulk", dto.ChecklistBulkRequest{
		Month: 4, Year: 2025,
		Items: []dto.ChecklistBulkItem{{LedgerEntryID: "nope"}},
	}, nil)

	s.assertError(rec, http.StatusBadRequest, apperrors.ValidationGeneral)
}

func TestStatisticsHandler(t *testing.T) {
	suite.Run(t, new(StatisticsHandlerSuite))
}

type StatisticsHandlerSuite struct {
	handlerSuite
	stats   *service_mocks.MockStatisticsServiceInterface
	handler *StatisticsHandler
}

func (s *StatisticsHandlerSuite) SetupTest() {
	s.setup()
	s.stats = service_mocks.NewMockStatisticsServiceInterface(s.ctrl)
	s.handler = NewStatisticsHandler(s.stats)
}

func (s *StatisticsHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *StatisticsHandlerSuite) TestMonthly_MissingQueryLeavesDefaultsToService() {
	s.stats.EXPECT().
		Monthly(gomock.Any(), s.userID, 0, 0).
		Return(&models.MonthlyStatistics{Month: "March", Year: 2025, SavingsPercent: "40.00%"}, nil)

	rec := s.call(s.handler.Monthly, http.MethodGet, "/statistics/monthly", nil, nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"month":"March"`)
}

func (s *StatisticsHandlerSuite) TestAnnual_InvalidYear() {
	s.stats.EXPECT().Annual(gomock.Any(), s.userID, 1800).Return(nil, models.ErrInvalidPeriod)

	rec := s.call(s.handler.Annual, http.MethodGet, "/statistics/annual?year=1800", nil, nil)

	s.assertError(rec, http.StatusBadRequest, apperrors.ValidationOutOfRange)
}

func (s *StatisticsHandlerSuite) TestTrend() {
	s.stats.EXPECT().Trend(gomock.Any(), s.userID).Return(&models.TrendStatistics{}, nil)

	rec := s.call(s.handler.Trend, http.MethodGet, "/statistics/trend", nil, nil)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *StatisticsHandlerSuite) TestByCategory() {
	s.stats.EXPECT().
		ByCategory(gomock.Any(), s.userID, 2, 2025).
		Return([]models.CategoryTotal{{Kind: models.EntryKindExpense, Category: models.UncategorizedLabel}}, nil)

	rec := s.call(s.handler.ByCategory, http.MethodGet, "/statistics/categories?month=2&year=2025", nil, nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), models.UncategorizedLabel)
}
