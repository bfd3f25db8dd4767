package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nando-castro/api-financas/internal/dto"
	apperrors "github.com/nando-castro/api-financas/internal/errors"
	"github.com/nando-castro/api-financas/internal/services"
)

type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	var req dto.CategoryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	category, err := h.categoryService.Create(c.Request().Context(), userID, req.Name)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	categories, err := h.categoryService.List(c.Request().Context(), userID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	categoryID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	var req dto.CategoryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	category, err := h.categoryService.Update(c.Request().Context(), userID, categoryID, req.Name)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, category)
}

// Delete removes the category; its ledger entries become uncategorized.
func (h *CategoryHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	categoryID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	if err := h.categoryService.Delete(c.Request().Context(), userID, categoryID); err != nil {
		return sendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
