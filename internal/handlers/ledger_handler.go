package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/nando-castro/api-financas/internal/dto"
	apperrors "github.com/nando-castro/api-financas/internal/errors"
	"github.com/nando-castro/api-financas/internal/models"
	"github.com/nando-castro/api-financas/internal/reports"
	"github.com/nando-castro/api-financas/internal/services"
	"github.com/nando-castro/api-financas/internal/validation"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// LedgerHandler serves recurring income/expense entries, their monthly
// balances and the spreadsheet export.
type LedgerHandler struct {
	ledgerService  services.LedgerServiceInterface
	balanceService services.MonthlyBalanceServiceInterface
	now            services.Clock
}

func NewLedgerHandler(
	ledgerService services.LedgerServiceInterface,
	balanceService services.MonthlyBalanceServiceInterface,
	now services.Clock,
) *LedgerHandler {
	return &LedgerHandler{
		ledgerService:  ledgerService,
		balanceService: balanceService,
		now:            now,
	}
}

func (h *LedgerHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	var req dto.CreateLedgerEntryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	input, err := ledgerInputFromRequest(&req)
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails(err.Error()))
	}

	entry, err := h.ledgerService.Create(c.Request().Context(), userID, input)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, entry)
}

func (h *LedgerHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	entries, err := h.ledgerService.List(c.Request().Context(), userID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, entries)
}

func (h *LedgerHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	entryID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	entry, err := h.ledgerService.Get(c.Request().Context(), userID, entryID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, entry)
}

func (h *LedgerHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	entryID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	var req dto.UpdateLedgerEntryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	patch, err := ledgerPatchFromRequest(&req)
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails(err.Error()))
	}

	entry, err := h.ledgerService.Update(c.Request().Context(), userID, entryID, patch)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, entry)
}

func (h *LedgerHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	entryID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	if err := h.ledgerService.Delete(c.Request().Context(), userID, entryID); err != nil {
		return sendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListByKind filters by INCOME or EXPENSE. month and year only apply when
// both are given; categoryId narrows to one category.
func (h *LedgerHandler) ListByKind(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	kind := strings.ToUpper(c.Param("kind"))
	month := getIntParam(c, "month", 0)
	year := getIntParam(c, "year", 0)

	var categoryID *uuid.UUID
	if raw := c.QueryParam("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("categoryId must be a valid UUID"))
		}
		categoryID = &id
	}

	entries, err := h.ledgerService.ListByKind(c.Request().Context(), userID, kind, month, year, categoryID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, entries)
}

// Balance returns the stored monthly balance, computing it on first access.
func (h *LedgerHandler) Balance(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	year, yerr := strconv.Atoi(c.Param("year"))
	month, merr := strconv.Atoi(c.Param("month"))
	if yerr != nil || merr != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("year and month must be integers"))
	}

	balance, err := h.balanceService.GetMonthlyBalance(c.Request().Context(), userID, models.Period{Year: year, Month: month})
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, balance)
}

// Export streams every ledger entry of the caller as an XLSX workbook.
func (h *LedgerHandler) Export(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	entries, err := h.ledgerService.List(c.Request().Context(), userID)
	if err != nil {
		return sendServiceError(c, err)
	}

	var buf bytes.Buffer
	if err := reports.WriteLedgerWorkbook(&buf, entries); err != nil {
		return SendSystemError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="`+reports.LedgerWorkbookName(h.now())+`"`)
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

func ledgerInputFromRequest(req *dto.CreateLedgerEntryRequest) (services.LedgerEntryInput, error) {
	amount, ok := validation.ParseMoney(req.Amount)
	if !ok {
		return services.LedgerEntryInput{}, errors.New("amount: invalid amount")
	}
	start, ok := validation.ParseDate(req.StartDate)
	if !ok {
		return services.LedgerEntryInput{}, errors.New("start_date: invalid date")
	}
	end, ok := parseOptionalDate(req.EndDate)
	if !ok {
		return services.LedgerEntryInput{}, errors.New("end_date: invalid date")
	}
	categoryID, err := parseOptionalUUID(req.CategoryID)
	if err != nil {
		return services.LedgerEntryInput{}, errors.New("category_id: invalid UUID")
	}
	cardID, err := parseOptionalUUID(req.CardID)
	if err != nil {
		return services.LedgerEntryInput{}, errors.New("card_id: invalid UUID")
	}

	return services.LedgerEntryInput{
		Name:          req.Name,
		Amount:        amount,
		Kind:          req.Kind,
		StartDate:     start,
		EndDate:       end,
		Installments:  req.Installments,
		CategoryID:    categoryID,
		PaymentMethod: req.PaymentMethod,
		CardID:        cardID,
	}, nil
}

func ledgerPatchFromRequest(req *dto.UpdateLedgerEntryRequest) (services.LedgerEntryPatch, error) {
	patch := services.LedgerEntryPatch{
		Name:          req.Name,
		Kind:          req.Kind,
		Installments:  req.Installments,
		PaymentMethod: req.PaymentMethod,
	}

	if req.Amount != nil {
		amount, ok := validation.ParseMoney(*req.Amount)
		if !ok {
			return patch, errors.New("amount: invalid amount")
		}
		patch.Amount = &amount
	}

	var ok bool
	if patch.StartDate, ok = parseOptionalDate(req.StartDate); !ok {
		return patch, errors.New("start_date: invalid date")
	}
	if patch.EndDate, ok = parseOptionalDate(req.EndDate); !ok {
		return patch, errors.New("end_date: invalid date")
	}

	var err error
	if patch.CategoryID, err = parseOptionalUUID(req.CategoryID); err != nil {
		return patch, errors.New("category_id: invalid UUID")
	}
	if patch.CardID, err = parseOptionalUUID(req.CardID); err != nil {
		return patch, errors.New("card_id: invalid UUID")
	}
	return patch, nil
}
