package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/nando-castro/api-financas/internal/database"
	"github.com/nando-castro/api-financas/internal/models"
)

func TestUserRepository(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}

type UserRepositorySuite struct {
	suite.Suite
	ctx  context.Context
	db   *database.DB
	repo UserRepositoryInterface
}

func (s *UserRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
}

func (s *UserRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *UserRepositorySuite) newUser(email string) *models.User {
	return &models.User{
		Name:         gofakeit.Name(),
		Email:        email,
		PasswordHash: "hashed_password",
	}
}

func (s *UserRepositorySuite) TestCreate_NormalizesEmail() {
	user := s.newUser("  Maria@Example.COM ")

	s.Require().NoError(s.repo.Create(s.ctx, user))
	s.NotEqual(uuid.Nil, user.ID)
	s.Equal("maria@example.com", user.Email)

	found, err := s.repo.GetByEmail(s.ctx, "MARIA@example.com")
	s.Require().NoError(err)
	s.Equal(user.ID, found.ID)
	s.Equal(models.DefaultCurrency, found.Currency)
}

func (s *UserRepositorySuite) TestCreate_DuplicateEmail() {
	s.Require().NoError(s.repo.Create(s.ctx, s.newUser("dup@example.com")))

	err := s.repo.Create(s.ctx, s.newUser("dup@example.com"))
	s.ErrorIs(err, ErrUserAlreadyExists)
}

func (s *UserRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserRepositorySuite) TestResetTokenRoundTrip() {
	user := s.newUser("reset@example.com")
	s.Require().NoError(s.repo.Create(s.ctx, user))

	user.SetResetToken("abc123", time.Now().Add(time.Hour))
	s.Require().NoError(s.repo.Update(s.ctx, user))

	found, err := s.repo.GetByResetTokenHash(s.ctx, "abc123")
	s.Require().NoError(err)
	s.Equal(user.ID, found.ID)

	found.ClearResetToken()
	s.Require().NoError(s.repo.Update(s.ctx, found))

	_, err = s.repo.GetByResetTokenHash(s.ctx, "abc123")
	s.ErrorIs(err, ErrUserNotFound)
}
