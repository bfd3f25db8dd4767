package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	apperrors "github.com/nando-castro/api-financas/internal/errors"
	"github.com/nando-castro/api-financas/internal/handlers"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo   *echo.Echo
	logBuf *bytes.Buffer
	logger *slog.Logger
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
	s.logBuf = &bytes.Buffer{}
	s.logger = slog.New(slog.NewJSONHandler(s.logBuf, nil))
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) serve(h echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cards", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(handlers.TraceIDContextKey, "panic-trace")
	return rec, PanicRecovery(s.logger)(h)(c)
}

func (s *PanicRecoveryTestSuite) TestRecoversFromPanic() {
	rec, err := s.serve(func(c echo.Context) error {
		panic("nil map write")
	})

	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), string(apperrors.SystemInternalError))
	s.Contains(rec.Body.String(), "panic-trace")
	s.NotContains(rec.Body.String(), "nil map write")

	s.Contains(s.logBuf.String(), "panic recovered")
	s.Contains(s.logBuf.String(), "nil map write")
	s.Contains(s.logBuf.String(), "stack_trace")
}

func (s *PanicRecoveryTestSuite) TestRecoversFromErrorPanic() {
	rec, err := s.serve(func(c echo.Context) error {
		panic(errors.New("exploded"))
	})

	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(s.logBuf.String(), "exploded")
}

func (s *PanicRecoveryTestSuite) TestPassesThroughWithoutPanic() {
	rec, err := s.serve(func(c echo.Context) error {
		return c.String(http.StatusOK, "fine")
	})

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Empty(s.logBuf.String())
}

func (s *PanicRecoveryTestSuite) TestPassesHandlerErrorThrough() {
	sentinel := errors.New("handler error")
	_, err := s.serve(func(c echo.Context) error {
		return sentinel
	})

	s.ErrorIs(err, sentinel)
}

func (s *PanicRecoveryTestSuite) TestCommittedResponseKept() {
	rec, err := s.serve(func(c echo.Context) error {
		_ = c.String(http.StatusAccepted, "partial")
		panic("after write")
	})

	s.NoError(err)
	s.Equal(http.StatusAccepted, rec.Code)
}
