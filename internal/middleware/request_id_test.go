package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/nando-castro/api-financas/internal/handlers"
	"github.com/nando-castro/api-financas/internal/services"
)

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (s *RequestIDTestSuite) run(header string) (*httptest.ResponseRecorder, string, string) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(TraceIDHeader, header)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	var fromEcho, fromCtx string
	handler := RequestID()(func(c echo.Context) error {
		fromEcho = GetTraceID(c)
		fromCtx = services.CorrelationID(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})
	s.Require().NoError(handler(c))
	return rec, fromEcho, fromCtx
}

func (s *RequestIDTestSuite) TestRequestID_GeneratesTraceID() {
	rec, fromEcho, fromCtx := s.run("")

	_, err := uuid.Parse(fromEcho)
	s.NoError(err)
	s.Equal(fromEcho, rec.Header().Get(TraceIDHeader))
	s.Equal(fromEcho, fromCtx)
}

func (s *RequestIDTestSuite) TestRequestID_UsesExistingTraceID() {
	rec, fromEcho, fromCtx := s.run("existing-trace-id-12345")

	s.Equal("existing-trace-id-12345", fromEcho)
	s.Equal("existing-trace-id-12345", fromCtx)
	s.Equal("existing-trace-id-12345", rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestRequestID_UniquePerRequest() {
	_, first, _ := s.run("")
	_, second, _ := s.run("")

	s.NotEqual(first, second)
}

func (s *RequestIDTestSuite) TestGetTraceID_Missing() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	s.Empty(GetTraceID(c))

	c.Set(handlers.TraceIDContextKey, 42)
	s.Empty(GetTraceID(c))
}
