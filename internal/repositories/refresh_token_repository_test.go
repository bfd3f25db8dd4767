package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/nando-castro/api-financas/internal/database"
	"github.com/nando-castro/api-financas/internal/models"
)

func TestTokenRepositories(t *testing.T) {
	suite.Run(t, new(TokenRepositorySuite))
}

type TokenRepositorySuite struct {
	suite.Suite
	ctx       context.Context
	db        *database.DB
	refresh   RefreshTokenRepositoryInterface
	blacklist BlacklistedTokenRepositoryInterface
	userID    uuid.UUID
}

func (s *TokenRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.db = database.SetupTestDB(s.T())
	s.refresh = NewRefreshTokenRepository(s.db.DB)
	s.blacklist = NewBlacklistedTokenRepository(s.db.DB)
	s.userID = database.CreateTestUser(s.T(), s.db, "tokens@example.com").ID
}

func (s *TokenRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TokenRepositorySuite) TestRefreshToken_RevokeOnce() {
	token := &models.RefreshToken{UserID: s.userID, TokenHash: "hash-1", ExpiresAt: time.Now().Add(time.Hour)}
	s.Require().NoError(s.refresh.Create(s.ctx, token))

	found, err := s.refresh.GetByTokenHash(s.ctx, "hash-1")
	s.Require().NoError(err)
	s.True(found.UsableAt(time.Now()))

	s.Require().NoError(s.refresh.Revoke(s.ctx, token.ID))
	s.ErrorIs(s.refresh.Revoke(s.ctx, token.ID), ErrRefreshTokenNotFound)

	found, err = s.refresh.GetByTokenHash(s.ctx, "hash-1")
	s.Require().NoError(err)
	s.False(found.UsableAt(time.Now()))
}

func (s *TokenRepositorySuite) TestRefreshToken_RevokeAllAndDeleteExpired() {
	live := &models.RefreshToken{UserID: s.userID, TokenHash: "live", ExpiresAt: time.Now().Add(time.Hour)}
	expired := &models.RefreshToken{UserID: s.userID, TokenHash: "expired", ExpiresAt: time.Now().Add(-time.Hour)}
	s.Require().NoError(s.refresh.Create(s.ctx, live))
	s.Require().NoError(s.refresh.Create(s.ctx, expired))

	s.Require().NoError(s.refresh.RevokeAllForUser(s.ctx, s.userID))

	deleted, err := s.refresh.DeleteExpired(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), deleted)

	found, err := s.refresh.GetByTokenHash(s.ctx, "live")
	s.Require().NoError(err)
	s.NotNil(found.RevokedAt)

	_, err = s.refresh.GetByTokenHash(s.ctx, "missing")
	s.ErrorIs(err, ErrRefreshTokenNotFound)
}

func (s *TokenRepositorySuite) TestBlacklist() {
	s.Require().NoError(s.blacklist.Create(s.ctx, &models.BlacklistedToken{
		JTI: "jti-1", UserID: s.userID, ExpiresAt: time.Now().Add(time.Hour),
	}))
	s.Require().NoError(s.blacklist.Create(s.ctx, &models.BlacklistedToken{
		JTI: "jti-1", UserID: s.userID, ExpiresAt: time.Now().Add(time.Hour),
	}))

	listed, err := s.blacklist.IsBlacklisted(s.ctx, "jti-1")
	s.Require().NoError(err)
	s.True(listed)

	listed, err = s.blacklist.IsBlacklisted(s.ctx, "jti-2")
	s.Require().NoError(err)
	s.False(listed)
}
