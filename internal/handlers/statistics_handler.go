package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/nando-castro/api-financas/internal/errors"
	"github.com/nando-castro/api-financas/internal/services"
)

// StatisticsHandler serves the reports derived from ledger entries. Missing
// month and year default to the current month in the service.
type StatisticsHandler struct {
	statisticsService services.StatisticsServiceInterface
}

func NewStatisticsHandler(statisticsService services.StatisticsServiceInterface) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

func (h *StatisticsHandler) Monthly(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	stats, err := h.statisticsService.Monthly(c.Request().Context(), userID,
		getIntParam(c, "month", 0), getIntParam(c, "year", 0))
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *StatisticsHandler) Annual(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	stats, err := h.statisticsService.Annual(c.Request().Context(), userID, getIntParam(c, "year", 0))
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *StatisticsHandler) Trend(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	trend, err := h.statisticsService.Trend(c.Request().Context(), userID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, trend)
}

func (h *StatisticsHandler) ByCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	totals, err := h.statisticsService.ByCategory(c.Request().Context(), userID,
		getIntParam(c, "month", 0), getIntParam(c, "year", 0))
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, totals)
}
