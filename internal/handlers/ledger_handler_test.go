package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/nando-castro/api-financas/internal/dto"
	apperrors "github.com/nando-castro/api-financas/internal/errors"
	"github.com/nando-castro/api-financas/internal/models"
	"github.com/nando-castro/api-financas/internal/repositories"
	"github.com/nando-castro/api-financas/internal/services"
	"github.com/nando-castro/api-financas/internal/services/service_mocks"
)

func TestLedgerHandler(t *testing.T) {
	suite.Run(t, new(LedgerHandlerSuite))
}

type LedgerHandlerSuite struct {
	handlerSuite
	ledger   *service_mocks.MockLedgerServiceInterface
	balances *service_mocks.MockMonthlyBalanceServiceInterface
	handler  *LedgerHandler
	now      time.Time
}

func (s *LedgerHandlerSuite) SetupTest() {
	s.setup()
	s.ledger = service_mocks.NewMockLedgerServiceInterface(s.ctrl)
	s.balances = service_mocks.NewMockMonthlyBalanceServiceInterface(s.ctrl)
	s.now = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	s.handler = NewLedgerHandler(s.ledger, s.balances, func() time.Time { return s.now })
}

func (s *LedgerHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LedgerHandlerSuite) TestCreate_ConvertsRequest() {
	categoryID := uuid.New()
	req := dto.CreateLedgerEntryRequest{
		Name:          "Laptop",
		Amount:        "1200.50",
		Kind:          models.EntryKindExpense,
		Installments:  intPtr(3),
		StartDate:     "2025-01-10",
		EndDate:       strPtr("2025-03-10"),
		CategoryID:    strPtr(categoryID.String()),
		PaymentMethod: strPtr(models.PaymentMethodPix),
	}

	s.ledger.EXPECT().
		Create(gomock.Any(), s.userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, in services.LedgerEntryInput) (*models.LedgerEntry, error) {
			s.Equal("Laptop", in.Name)
			s.True(decimal.RequireFromString("1200.50").Equal(in.Amount))
			s.Equal(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), in.StartDate)
			s.Require().NotNil(in.EndDate)
			s.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), *in.EndDate)
			s.Equal(&categoryID, in.CategoryID)
			s.Nil(in.CardID)
			return &models.LedgerEntry{ID: uuid.New(), Name: in.Name, Amount: in.Amount, Kind: in.Kind}, nil
		})

	rec := s.call(s.handler.Create, http.MethodPost, "/ledger", req, nil)

	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), `"name":"Laptop"`)
}

func (s *LedgerHandlerSuite) TestCreate_Validation() {
	rec := s.call(s.handler.Create, http.MethodPost, "/ledger", map[string]any{
		"name":       "Rent",
		"amount":     "10.999",
		"kind":       "TRANSFER",
		"start_date": "10/01/2025",
	}, nil)

	detail := s.assertError(rec, http.StatusBadRequest, apperrors.ValidationGeneral)
	s.Equal([]string{
		"amount: must be a non-negative amount with up to 2 decimal places",
		"kind: must be INCOME or EXPENSE",
		"start_date: must be a date in YYYY-MM-DD format",
	}, detail.Details)
}

func (s *LedgerHandlerSuite) TestCreate_DomainRuleViolation() {
	s.ledger.EXPECT().
		Create(gomock.Any(), s.userID, gomock.Any()).
		Return(nil, models.ErrEndBeforeStart)

	rec := s.call(s.handler.Create, http.MethodPost, "/ledger", dto.CreateLedgerEntryRequest{
		Name: "Gym", Amount: "90", Kind: models.EntryKindExpense,
		StartDate: "2025-05-01", EndDate: strPtr("2025-01-01"),
	}, nil)

	detail := s.assertError(rec, http.StatusBadRequest, apperrors.ValidationInvalidDate)
	s.Equal([]string{models.ErrEndBeforeStart.Error()}, detail.Details)
}

func (s *LedgerHandlerSuite) TestGet_Errors() {
	entryID := uuid.New()

	s.Run("another user's entry", func() {
		s.ledger.EXPECT().Get(gomock.Any(), s.userID, entryID).Return(nil, services.ErrForbidden)

		rec := s.call(s.handler.Get, http.MethodGet, "/ledger/"+entryID.String(), nil, params{"id": entryID.String()})

		s.assertError(rec, http.StatusForbidden, apperrors.AuthInsufficientPermission)
	})

	s.Run("missing entry", func() {
		s.ledger.EXPECT().Get(gomock.Any(), s.userID, entryID).Return(nil, repositories.ErrLedgerEntryNotFound)

		rec := s.call(s.handler.Get, http.MethodGet, "/ledger/"+entryID.String(), nil, params{"id": entryID.String()})

		s.assertError(rec, http.StatusNotFound, apperrors.LedgerEntryNotFound)
	})

	s.Run("malformed id", func() {
		rec := s.call(s.handler.Get, http.MethodGet, "/ledger/42", nil, params{"id": "42"})

		s.assertError(rec, http.StatusBadRequest, apperrors.ValidationInvalidFormat)
	})

	s.Run("unexpected failure", func() {
		s.ledger.EXPECT().Get(gomock.Any(), s.userID, entryID).Return(nil, errors.New("connection reset"))

		rec := s.call(s.handler.Get, http.MethodGet, "/ledger/"+entryID.String(), nil, params{"id": entryID.String()})

		s.assertError(rec, http.StatusInternalServerError, apperrors.SystemInternalError)
	})
}

func (s *LedgerHandlerSuite) TestUpdate_PartialPatch() {
	entryID := uuid.New()

	s.ledger.EXPECT().
		Update(gomock.Any(), s.userID, entryID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, patch services.LedgerEntryPatch) (*models.LedgerEntry, error) {
			s.Nil(patch.Name)
			s.Require().NotNil(patch.Amount)
			s.True(decimal.NewFromInt(80).Equal(*patch.Amount))
			s.Nil(patch.StartDate)
			return &models.LedgerEntry{ID: entryID, Amount: *patch.Amount}, nil
		})

	rec := s.call(s.handler.Update, http.MethodPut, "/ledger/"+entryID.String(),
		map[string]string{"amount": "80"}, params{"id": entryID.String()})

	s.Equal(http.StatusOK, rec.Code)
}

func (s *LedgerHandlerSuite) TestDelete() {
	entryID := uuid.New()
	s.ledger.EXPECT().Delete(gomock.Any(), s.userID, entryID).Return(nil)

	rec := s.call(s.handler.Delete, http.MethodDelete, "/ledger/"+entryID.String(), nil, params{"id": entryID.String()})

	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *LedgerHandlerSuite) TestListByKind() {
	categoryID := uuid.New()

	s.ledger.EXPECT().
		ListByKind(gomock.Any(), s.userID, models.EntryKindIncome, 2, 2025, &categoryID).
		Return([]models.LedgerEntryView{}, nil)

	rec := s.call(s.handler.ListByKind, http.MethodGet,
		"/ledger/kind/income?month=2&year=2025&categoryId="+categoryID.String(), nil, params{"kind": "income"})

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())
}

func (s *LedgerHandlerSuite) TestListByKind_BadCategory() {
	rec := s.call(s.handler.ListByKind, http.MethodGet, "/ledger/kind/EXPENSE?categoryId=abc", nil, params{"kind": "EXPENSE"})

	s.assertError(rec, http.StatusBadRequest, apperrors.ValidationInvalidFormat)
}

func (s *LedgerHandlerSuite) TestBalance() {
	s.balances.EXPECT().
		GetMonthlyBalance(gomock.Any(), s.userID, models.Period{Year: 2025, Month: 2}).
		Return(&models.MonthlyBalance{
			Year: 2025, Month: 2,
			TotalIncome:        decimal.NewFromInt(5000),
			TotalExpense:       decimal.NewFromInt(3000),
			CurrentBalance:     decimal.NewFromInt(2000),
			AccumulatedBalance: decimal.NewFromInt(4500),
		}, nil)

	rec := s.call(s.handler.Balance, http.MethodGet, "/ledger/balances/2025/2", nil, params{"year": "2025", "month": "2"})

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"accumulated_balance":"4500"`)
}

func (s *LedgerHandlerSuite) TestBalance_InvalidPeriod() {
	s.Run("not a number", func() {
		rec := s.call(s.handler.Balance, http.MethodGet, "/ledger/balances/x/2", nil, params{"year": "x", "month": "2"})

		s.assertError(rec, http.StatusBadRequest, apperrors.ValidationInvalidFormat)
	})

	s.Run("month out of range", func() {
		s.balances.EXPECT().
			GetMonthlyBalance(gomock.Any(), s.userID, models.Period{Year: 2025, Month: 13}).
			Return(nil, models.ErrInvalidPeriod)

		rec := s.call(s.handler.Balance, http.MethodGet, "/ledger/balances/2025/13", nil, params{"year": "2025", "month": "13"})

		s.assertError(rec, http.StatusBadRequest, apperrors.ValidationOutOfRange)
	})
}

func (s *LedgerHandlerSuite) TestExport() {
	s.ledger.EXPECT().List(gomock.Any(), s.userID).Return([]models.LedgerEntryView{
		{LedgerEntry: models.LedgerEntry{
			ID: uuid.New(), Name: "Salary", Kind: models.EntryKindIncome,
			Amount: decimal.NewFromInt(5000), StartDate: s.now,
		}},
	}, nil)

	rec := s.call(s.handler.Export, http.MethodGet, "/ledger/export.xlsx", nil, nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(xlsxContentType, rec.Header().Get("Content-Type"))
	s.Equal(`attachment; filename="ledger_20250314.xlsx"`, rec.Header().Get("Content-Disposition"))
	s.Equal("PK", rec.Body.String()[:2])
}
