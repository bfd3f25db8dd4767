package handlers

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/nando-castro/api-financas/internal/dto"
	apperrors "github.com/nando-castro/api-financas/internal/errors"
	"github.com/nando-castro/api-financas/internal/models"
	"github.com/nando-castro/api-financas/internal/reports"
	"github.com/nando-castro/api-financas/internal/services"
	"github.com/nando-castro/api-financas/internal/validation"
)

// CardHandler serves cards, their monthly statements and statement entries.
type CardHandler struct {
	cardService      services.CardServiceInterface
	statementService services.StatementServiceInterface
	now              services.Clock
}

func NewCardHandler(
	cardService services.CardServiceInterface,
	statementService services.StatementServiceInterface,
	now services.Clock,
) *CardHandler {
	return &CardHandler{
		cardService:      cardService,
		statementService: statementService,
		now:              now,
	}
}

// Create registers a card.
// @Summary Create card
// @Tags Cards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCardRequest true "Card"
// @Success 201 {object} models.Card
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_*"
// @Router /cards [post]
func (h *CardHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	var req dto.CreateCardRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	baseLimit := decimal.Zero
	if req.BaseLimit != "" {
		var ok bool
		if baseLimit, ok = validation.ParseMoney(req.BaseLimit); !ok {
			return SendError(c, apperrors.ValidationInvalidAmount, apperrors.WithDetails("base_limit: invalid amount"))
		}
	}

	card, err := h.cardService.CreateCard(c.Request().Context(), userID, services.CardInput{
		Name:       req.Name,
		BaseLimit:  baseLimit,
		ClosingDay: req.ClosingDay,
		DueDay:     req.DueDay,
	})
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, card)
}

func (h *CardHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	cards, err := h.cardService.ListCards(c.Request().Context(), userID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, cards)
}

func (h *CardHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	cardID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	card, err := h.cardService.GetCard(c.Request().Context(), userID, cardID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, card)
}

func (h *CardHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	cardID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	var req dto.UpdateCardRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	patch := services.CardPatch{Name: req.Name, ClosingDay: req.ClosingDay, DueDay: req.DueDay}
	if req.BaseLimit != nil {
		limit, ok := validation.ParseMoney(*req.BaseLimit)
		if !ok {
			return SendError(c, apperrors.ValidationInvalidAmount, apperrors.WithDetails("base_limit: invalid amount"))
		}
		patch.BaseLimit = &limit
	}

	card, err := h.cardService.UpdateCard(c.Request().Context(), userID, cardID, patch)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, card)
}

// Delete removes the card with its statements; ledger entries paid with it
// are kept and detached.
func (h *CardHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	cardID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	if err := h.cardService.DeleteCard(c.Request().Context(), userID, cardID); err != nil {
		return sendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Balances lists the limit position of every card for ?month&year.
// @Summary Card balances
// @Tags Cards
// @Security BearerAuth
// @Produce json
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Success 200 {array} models.CardBalance
// @Router /cards/balances [get]
func (h *CardHandler) Balances(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	period, ok, err := periodQuery(c, h.now())
	if !ok {
		return err
	}

	balances, err := h.statementService.GetCardBalances(c.Request().Context(), userID, period)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, balances)
}

// Statement returns the statement detail of a card for ?month&year.
// @Summary Statement detail
// @Tags Cards
// @Security BearerAuth
// @Produce json
// @Param id path string true "Card ID"
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Success 200 {object} models.StatementDetail
// @Failure 404 {object} errors.ErrorResponse "CARD_001"
// @Router /cards/{id}/statement [get]
func (h *CardHandler) Statement(c echo.Context) error {
	detail, ok, err := h.statementDetail(c)
	if !ok {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// StatementPDF renders the same detail as Statement as a PDF download.
func (h *CardHandler) StatementPDF(c echo.Context) error {
	detail, ok, err := h.statementDetail(c)
	if !ok {
		return err
	}

	var buf bytes.Buffer
	if err := reports.WriteStatementPDF(&buf, detail, h.now()); err != nil {
		return SendSystemError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="`+reports.StatementPDFName(detail)+`"`)
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}

// AdjustStatement sets the month limit override and/or the manual
// adjustment of a statement, creating the statement when needed.
// @Summary Adjust statement
// @Tags Cards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Card ID"
// @Param request body dto.AdjustStatementRequest true "Adjustment"
// @Success 200 {object} models.StatementDetail
// @Router /cards/{id}/statement [patch]
func (h *CardHandler) AdjustStatement(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	cardID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	var req dto.AdjustStatementRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	input := services.AdjustStatementInput{Period: models.Period{Year: req.Year, Month: req.Month}}
	if req.MonthLimitOverride != nil {
		override, ok := validation.ParseMoney(*req.MonthLimitOverride)
		if !ok {
			return SendError(c, apperrors.ValidationInvalidAmount, apperrors.WithDetails("month_limit_override: invalid amount"))
		}
		input.MonthLimitOverride = &override
	}
	if req.Adjustment != nil {
		adjustment, ok := validation.ParseSignedMoney(*req.Adjustment)
		if !ok {
			return SendError(c, apperrors.ValidationInvalidAmount, apperrors.WithDetails("adjustment: invalid amount"))
		}
		input.Adjustment = &adjustment
	}

	ctx := c.Request().Context()
	if _, err := h.statementService.AdjustStatement(ctx, userID, cardID, input); err != nil {
		return sendServiceError(c, err)
	}

	detail, err := h.statementService.GetStatementDetail(ctx, userID, cardID, input.Period)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, detail)
}

// CreateEntry records a purchase or a payment on the card.
// @Summary Record statement entry
// @Tags Cards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Card ID"
// @Param request body dto.CreateStatementEntryRequest true "Entry"
// @Success 201 {object} models.StatementEntry
// @Router /cards/{id}/entries [post]
func (h *CardHandler) CreateEntry(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	cardID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	var req dto.CreateStatementEntryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	date, ok := validation.ParseDate(req.Date)
	if !ok {
		return SendError(c, apperrors.ValidationInvalidDate, apperrors.WithDetails("date: invalid date"))
	}
	amount, ok := validation.ParseMoney(req.Amount)
	if !ok {
		return SendError(c, apperrors.ValidationInvalidAmount, apperrors.WithDetails("amount: invalid amount"))
	}

	input := services.RecordEntryInput{
		Kind:        req.Kind,
		Date:        date,
		Amount:      amount,
		Description: req.Description,
	}
	if req.Month != nil || req.Year != nil {
		if req.Month == nil || req.Year == nil {
			return SendError(c, apperrors.ValidationRequiredField, apperrors.WithDetails("month and year must be given together"))
		}
		input.Period = &models.Period{Year: *req.Year, Month: *req.Month}
	}

	entry, err := h.statementService.RecordTransaction(c.Request().Context(), userID, cardID, input)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, entry)
}

// UpdateEntry edits a statement entry; a new date may move it to another statement.
func (h *CardHandler) UpdateEntry(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	cardID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}
	entryID, ok, err := uuidParam(c, "entryId")
	if !ok {
		return err
	}

	var req dto.UpdateStatementEntryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	input := services.EditEntryInput{Kind: req.Kind, Description: req.Description}
	if input.Date, ok = parseOptionalDate(req.Date); !ok {
		return SendError(c, apperrors.ValidationInvalidDate, apperrors.WithDetails("date: invalid date"))
	}
	if req.Amount != nil {
		amount, ok := validation.ParseMoney(*req.Amount)
		if !ok {
			return SendError(c, apperrors.ValidationInvalidAmount, apperrors.WithDetails("amount: invalid amount"))
		}
		input.Amount = &amount
	}

	entry, err := h.statementService.EditTransaction(c.Request().Context(), userID, cardID, entryID, input)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, entry)
}

func (h *CardHandler) DeleteEntry(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	cardID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}
	entryID, ok, err := uuidParam(c, "entryId")
	if !ok {
		return err
	}

	if err := h.statementService.DeleteTransaction(c.Request().Context(), userID, cardID, entryID); err != nil {
		return sendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CardHandler) statementDetail(c echo.Context) (*models.StatementDetail, bool, error) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return nil, false, SendError(c, apperrors.AuthMissingToken)
	}

	cardID, ok, err := uuidParam(c, "id")
	if !ok {
		return nil, false, err
	}

	period, ok, err := periodQuery(c, h.now())
	if !ok {
		return nil, false, err
	}

	detail, err := h.statementService.GetStatementDetail(c.Request().Context(), userID, cardID, period)
	if err != nil {
		return nil, false, sendServiceError(c, err)
	}
	return detail, true, nil
}
