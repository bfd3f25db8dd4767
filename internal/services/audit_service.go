package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/nando-castro/api-financas/internal/models"
	"github.com/nando-castro/api-financas/internal/repositories"
)

const (
	DefaultActivityLimit = 20
	MaxActivityLimit     = 100
)

var ErrInvalidUserID = errors.New("invalid user ID")

// AuditService reads the persisted authentication audit trail
type AuditService struct {
	repo repositories.AuditLogRepositoryInterface
}

func NewAuditService(repo repositories.AuditLogRepositoryInterface) AuditServiceInterface {
	return &AuditService{
		repo: repo,
	}
}

// GetUserActivity pages through a user's audit logs, newest first.
// A non-positive limit falls back to DefaultActivityLimit.
func (s *AuditService) GetUserActivity(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	if userID == uuid.Nil {
		return nil, 0, ErrInvalidUserID
	}

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	if limit > MaxActivityLimit {
		limit = MaxActivityLimit
	}

	return s.repo.GetByUserID(ctx, userID, offset, limit)
}
