package handlers

import (
	"bytes"
	"context"
	"encoding/json"
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

func TestCardHandler(t *testing.T) {
	suite.Run(t, new(CardHandlerSuite))
}

type CardHandlerSuite struct {
	handlerSuite
	cards      *service_mocks.MockCardServiceInterface
	statements *service_mocks.MockStatementServiceInterface
	handler    *CardHandler
	cardID     uuid.UUID
}

func (s *CardHandlerSuite) SetupTest() {
	s.setup()
	s.cards = service_mocks.NewMockCardServiceInterface(s.ctrl)
	s.statements = service_mocks.NewMockStatementServiceInterface(s.ctrl)
	now := func() time.Time { return time.Date(2025, 1, 20, 8, 0, 0, 0, time.UTC) }
	s.handler = NewCardHandler(s.cards, s.statements, now)
	s.cardID = uuid.New()
}

func (s *CardHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CardHandlerSuite) idParams() params {
	return params{"id": s.cardID.String()}
}

func (s *CardHandlerSuite) detail() *models.StatementDetail {
	d := &models.StatementDetail{
		Card:      models.CardSummary{ID: s.cardID, Name: "Visa", BaseLimit: decimal.NewFromInt(1000)},
		Statement: models.StatementSummary{ID: uuid.New(), Month: 1, Year: 2025},
	}
	d.Statement.StatementValue = decimal.NewFromInt(250)
	d.Statement.EffectiveLimit = decimal.NewFromInt(1000)
	d.Statement.UtilizedLimit = decimal.NewFromInt(250)
	d.Statement.AvailableLimit = decimal.NewFromInt(750)
	return d
}

func (s *CardHandlerSuite) TestCreate() {
	s.Run("base limit defaults to zero", func() {
		s.cards.EXPECT().
			CreateCard(gomock.Any(), s.userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, in services.CardInput) (*models.Card, error) {
				s.True(in.BaseLimit.IsZero())
				s.Equal(intPtr(5), in.ClosingDay)
				return &models.Card{ID: s.cardID, Name: in.Name}, nil
			})

		rec := s.call(s.handler.Create, http.MethodPost, "/cards",
			dto.CreateCardRequest{Name: "Visa", ClosingDay: intPtr(5)}, nil)

		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("closing day out of range", func() {
		rec := s.call(s.handler.Create, http.MethodPost, "/cards",
			dto.CreateCardRequest{Name: "Visa", ClosingDay: intPtr(32)}, nil)

		detail := s.assertError(rec, http.StatusBadRequest, apperrors.ValidationGeneral)
		s.Equal([]string{"closing_day: must be between 1 and 31"}, detail.Details)
	})
}

func (s *CardHandlerSuite) TestGet_AnotherUsersCardIsNotFound() {
	s.cards.EXPECT().GetCard(gomock.Any(), s.userID, s.cardID).Return(nil, repositories.ErrCardNotFound)

	rec := s.call(s.handler.Get, http.MethodGet, "/cards/"+s.cardID.String(), nil, s.idParams())

	s.assertError(rec, http.StatusNotFound, apperrors.CardNotFound)
}

func (s *CardHandlerSuite) TestUpdate() {
	s.cards.EXPECT().
		UpdateCard(gomock.Any(), s.userID, s.cardID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, patch services.CardPatch) (*models.Card, error) {
			s.Require().NotNil(patch.BaseLimit)
			s.True(decimal.NewFromInt(2500).Equal(*patch.BaseLimit))
			s.Nil(patch.Name)
			return &models.Card{ID: s.cardID, BaseLimit: *patch.BaseLimit}, nil
		})

	rec := s.call(s.handler.Update, http.MethodPatch, "/cards/"+s.cardID.String(),
		map[string]string{"base_limit": "2500"}, s.idParams())

	s.Equal(http.StatusOK, rec.Code)
}

func (s *CardHandlerSuite) TestDelete() {
	s.cards.EXPECT().DeleteCard(gomock.Any(), s.userID, s.cardID).Return(nil)

	rec := s.call(s.handler.Delete, http.MethodDelete, "/cards/"+s.cardID.String(), nil, s.idParams())

	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *CardHandlerSuite) TestBalances_DefaultsToCurrentMonth() {
	s.statements.EXPECT().
		GetCardBalances(gomock.Any(), s.userID, models.Period{Year: 2025, Month: 1}).
		Return([]models.CardBalance{{CardID: s.cardID, Name: "Visa", Month: 1, Year: 2025}}, nil)

	rec := s.call(s.handler.Balances, http.MethodGet, "/cards/balances", nil, nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), s.cardID.String())
}

func (s *CardHandlerSuite) TestBalances_InvalidMonth() {
	rec := s.call(s.handler.Balances, http.MethodGet, "/cards/balances?month=13&year=2025", nil, nil)

	s.assertError(rec, http.StatusBadRequest, apperrors.ValidationOutOfRange)
}

func (s *CardHandlerSuite) TestStatement() {
	s.statements.EXPECT().
		GetStatementDetail(gomock.Any(), s.userID, s.cardID, models.Period{Year: 2024, Month: 12}).
		Return(s.detail(), nil)

	rec := s.call(s.handler.Statement, http.MethodGet, "/cards/x/statement?month=12&year=2024", nil, s.idParams())

	s.Equal(http.StatusOK, rec.Code)
	var got map[string]map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal("250", got["statement"]["statement_value"])
	s.Equal("750", got["statement"]["available_limit"])
}

func (s *CardHandlerSuite) TestStatementPDF() {
	s.statements.EXPECT().
		GetStatementDetail(gomock.Any(), s.userID, s.cardID, models.Period{Year: 2025, Month: 1}).
		Return(s.detail(), nil)

	rec := s.call(s.handler.StatementPDF, http.MethodGet, "/cards/x/statement/pdf", nil, s.idParams())

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("application/pdf", rec.Header().Get("Content-Type"))
	s.Equal(`attachment; filename="statement-2025-01.pdf"`, rec.Header().Get("Content-Disposition"))
	s.True(bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
}

func (s *CardHandlerSuite) TestAdjustStatement() {
	period := models.Period{Year: 2025, Month: 2}

	gomock.InOrder(
		s.statements.EXPECT().
			AdjustStatement(gomock.Any(), s.userID, s.cardID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, in services.AdjustStatementInput) (*models.Statement, error) {
				s.Equal(period, in.Period)
				s.Nil(in.MonthLimitOverride)
				s.Require().NotNil(in.Adjustment)
				s.True(decimal.RequireFromString("-35.10").Equal(*in.Adjustment))
				return &models.Statement{ID: uuid.New()}, nil
			}),
		s.statements.EXPECT().
			GetStatementDetail(gomock.Any(), s.userID, s.cardID, period).
			Return(s.detail(), nil),
	)

	rec := s.call(s.handler.AdjustStatement, http.MethodPatch, "/cards/x/statement",
		dto.AdjustStatementRequest{Month: 2, Year: 2025, Adjustment: strPtr("-35.10")}, s.idParams())

	s.Equal(http.StatusOK, rec.Code)
}

func (s *CardHandlerSuite) TestAdjustStatement_NegativeOverrideRejected() {
	rec := s.call(s.handler.AdjustStatement, http.MethodPatch, "/cards/x/statement",
		dto.AdjustStatementRequest{Month: 2, Year: 2025, MonthLimitOverride: strPtr("-1")}, s.idParams())

	s.assertError(rec, http.StatusBadRequest, apperrors.ValidationGeneral)
}

func (s *CardHandlerSuite) TestCreateEntry() {
	s.Run("payment for an explicit statement", func() {
		s.statements.EXPECT().
			RecordTransaction(gomock.Any(), s.userID, s.cardID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, in services.RecordEntryInput) (*models.StatementEntry, error) {
				s.Equal(models.StatementEntryPayment, in.Kind)
				s.Equal(time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC), in.Date)
				s.Equal(&models.Period{Year: 2025, Month: 1}, in.Period)
				return &models.StatementEntry{ID: uuid.New(), Kind: in.Kind, Amount: in.Amount}, nil
			})

		rec := s.call(s.handler.CreateEntry, http.MethodPost, "/cards/x/entries", dto.CreateStatementEntryRequest{
			Kind: models.StatementEntryPayment, Date: "2025-02-03", Amount: "300",
			Month: intPtr(1), Year: intPtr(2025),
		}, s.idParams())

		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("month without year", func() {
		rec := s.call(s.handler.CreateEntry, http.MethodPost, "/cards/x/entries", dto.CreateStatementEntryRequest{
			Kind: models.StatementEntryPayment, Date: "2025-02-03", Amount: "300", Month: intPtr(1),
		}, s.idParams())

		s.assertError(rec, http.StatusBadRequest, apperrors.ValidationRequiredField)
	})

	s.Run("unknown kind", func() {
		rec := s.call(s.handler.CreateEntry, http.MethodPost, "/cards/x/entries", dto.CreateStatementEntryRequest{
			Kind: "REFUND", Date: "2025-02-03", Amount: "300",
		}, s.idParams())

		detail := s.assertError(rec, http.StatusBadRequest, apperrors.ValidationGeneral)
		s.Equal([]string{"kind: must be one of: PURCHASE PAYMENT"}, detail.Details)
	})
}

func (s *CardHandlerSuite) TestUpdateEntry() {
	entryID := uuid.New()
	p := params{"id": s.cardID.String(), "entryId": entryID.String()}

	s.statements.EXPECT().
		EditTransaction(gomock.Any(), s.userID, s.cardID, entryID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _ uuid.UUID, in services.EditEntryInput) (*models.StatementEntry, error) {
			s.Require().NotNil(in.Date)
			s.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *in.Date)
			s.Nil(in.Amount)
			return &models.StatementEntry{ID: entryID}, nil
		})

	rec := s.call(s.handler.UpdateEntry, http.MethodPatch, "/cards/x/entries/y",
		map[string]string{"date": "2025-03-01"}, p)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *CardHandlerSuite) TestDeleteEntry_NotFound() {
	entryID := uuid.New()
	p := params{"id": s.cardID.String(), "entryId": entryID.String()}

	s.statements.EXPECT().
		DeleteTransaction(gomock.Any(), s.userID, s.cardID, entryID).
		Return(repositories.ErrStatementEntryNotFound)

	rec := s.call(s.handler.DeleteEntry, http.MethodDelete, "/cards/x/entries/y", nil, p)

	s.assertError(rec, http.StatusNotFound, apperrors.StatementEntryNotFound)
}
