package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nando-castro/api-financas/internal/models"
	"github.com/nando-castro/api-financas/internal/repositories"
)

type CardInput struct {
	Name       string
	BaseLimit  decimal.Decimal
	ClosingDay *int
	DueDay     *int
}

// CardPatch holds the card fields to change; nil fields are left as they are.
type CardPatch struct {
	Name       *string
	BaseLimit  *decimal.Decimal
	ClosingDay *int
	DueDay     *int
}

type cardService struct {
	store  repositories.Store
	logger *slog.Logger
}

func NewCardService(store repositories.Store, logger *slog.Logger) CardServiceInterface {
	return &cardService{
		store:  store,
		logger: logger,
	}
}

func (s *cardService) CreateCard(ctx context.Context, userID uuid.UUID, input CardInput) (*models.Card, error) {
	card := &models.Card{
		Name:       strings.TrimSpace(input.Name),
		BaseLimit:  input.BaseLimit,
		ClosingDay: input.ClosingDay,
		DueDay:     input.DueDay,
		UserID:     userID,
	}
	if err := card.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.Cards().Create(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *cardService) ListCards(ctx context.Context, userID uuid.UUID) ([]models.Card, error) {
	return s.store.Cards().ListByUser(ctx, userID)
}

func (s *cardService) GetCard(ctx context.Context, userID, cardID uuid.UUID) (*models.Card, error) {
	return ownedCard(ctx, s.store, userID, cardID)
}

func (s *cardService) UpdateCard(ctx context.Context, userID, cardID uuid.UUID, patch CardPatch) (*models.Card, error) {
	card, err := ownedCard(ctx, s.store, userID, cardID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		card.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.BaseLimit != nil {
		card.BaseLimit = *patch.BaseLimit
	}
	if patch.ClosingDay != nil {
		card.ClosingDay = patch.ClosingDay
	}
	if patch.DueDay != nil {
		card.DueDay = patch.DueDay
	}

	if err := s.store.Cards().Update(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

// DeleteCard removes the card with its statements and entries. Ledger entries
// paid with the card lose their payment method.
func (s *cardService) DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error {
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		card, err := ownedCard(ctx, tx, userID, cardID)
		if err != nil {
			return err
		}

		statements, err := tx.Statements().ListByCard(ctx, card.ID)
		if err != nil {
			return err
		}

		ids := make([]uuid.UUID, len(statements))
		for i := range statements {
			ids[i] = statements[i].ID
		}

		if err := tx.StatementEntries().DeleteByStatements(ctx, ids); err != nil {
			return err
		}
		if err := tx.Statements().DeleteByCard(ctx, card.ID); err != nil {
			return err
		}
		if err := tx.LedgerEntries().DetachCard(ctx, card.ID); err != nil {
			return err
		}
		return tx.Cards().Delete(ctx, card.ID)
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "card deleted",
		"card_id", cardID,
		"user_id", userID)
	return nil
}
