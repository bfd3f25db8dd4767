package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nando-castro/api-financas/internal/models"
	"github.com/nando-castro/api-financas/internal/repositories"
)

type categoryService struct {
	store  repositories.Store
	logger *slog.Logger
}

func NewCategoryService(store repositories.Store, logger *slog.Logger) CategoryServiceInterface {
	return &categoryService{
		store:  store,
		logger: logger,
	}
}

func (s *categoryService) Create(ctx context.Context, userID uuid.UUID, name string) (*models.Category, error) {
	category := &models.Category{Name: name, UserID: userID}
	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.Categories().Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) List(ctx context.Context, userID uuid.UUID) ([]models.Category, error) {
	return s.store.Categories().ListByUser(ctx, userID)
}

func (s *categoryService) Update(ctx context.Context, userID, categoryID uuid.UUID, name string) (*models.Category, error) {
	category, err := ownedCategory(ctx, s.store, userID, categoryID)
	if err != nil {
		return nil, err
	}

	category.Name = name
	if err := s.store.Categories().Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes the category and leaves its ledger entries uncategorized.
func (s *categoryService) Delete(ctx context.Context, userID, categoryID uuid.UUID) error {
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		if _, err := ownedCategory(ctx, tx, userID, categoryID); err != nil {
			return err
		}
		if err := tx.LedgerEntries().ClearCategory(ctx, categoryID); err != nil {
			return err
		}
		return tx.Categories().Delete(ctx, categoryID)
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "category deleted",
		"user_id", userID.String(),
		"category_id", categoryID.String(),
	)
	return nil
}

func ownedCategory(ctx context.Context, store repositories.Store, userID, categoryID uuid.UUID) (*models.Category, error) {
	category, err := store.Categories().GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category.UserID != userID {
		return nil, ErrForbidden
	}
	return category, nil
}
