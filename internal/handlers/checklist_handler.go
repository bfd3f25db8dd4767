package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/nando-castro/api-financas/internal/dto"
	apperrors "github.com/nando-castro/api-financas/internal/errors"
	"github.com/nando-castro/api-financas/internal/models"
	"github.com/nando-castro/api-financas/internal/services"
)

type ChecklistHandler struct {
	checklistService services.ChecklistServiceInterface
}

func NewChecklistHandler(checklistService services.ChecklistServiceInterface) *ChecklistHandler {
	return &ChecklistHandler{checklistService: checklistService}
}

func (h *ChecklistHandler) Monthly(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	checklist, err := h.checklistService.Monthly(c.Request().Context(), userID,
		getIntParam(c, "month", 0), getIntParam(c, "year", 0))
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, checklist)
}

// BulkUpdate marks or unmarks entries for a month in one request.
func (h *ChecklistHandler) BulkUpdate(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	var req dto.ChecklistBulkRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	items := make([]services.ChecklistToggle, 0, len(req.Items))
	for _, item := range req.Items {
		id, err := uuid.Parse(item.LedgerEntryID)
		if err != nil {
			return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("ledger_entry_id must be a valid UUID"))
		}
		items = append(items, services.ChecklistToggle{LedgerEntryID: id, Checked: item.Checked})
	}

	resp, err := h.checklistService.BulkUpdate(c.Request().Context(), userID,
		models.Period{Year: req.Year, Month: req.Month}, items)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}
