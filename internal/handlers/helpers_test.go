package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	apperrors "github.com/nando-castro/api-financas/internal/errors"
)

const testTraceID = "trace-test"

// handlerSuite carries the echo instance and the authenticated caller shared
// by the handler suites.
type handlerSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	e      *echo.Echo
	userID uuid.UUID
}

func (s *handlerSuite) setup() {
	s.ctrl = gomock.NewController(s.T())
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.userID = uuid.New()
}

type params map[string]string

// call runs h against a request carrying body (a raw string or a value to be
// JSON encoded) as the suite's user.
func (s *handlerSuite) call(h echo.HandlerFunc, method, target string, body any, p params) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set(TraceIDContextKey, testTraceID)
	if s.userID != uuid.Nil {
		c.Set(UserIDContextKey, s.userID)
	}
	if len(p) > 0 {
		names := make([]string, 0, len(p))
		values := make([]string, 0, len(p))
		for name, value := range p {
			names = append(names, name)
			values = append(values, value)
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}

	s.Require().NoError(h(c))
	return rec
}

func (s *handlerSuite) decodeError(rec *httptest.ResponseRecorder) apperrors.ErrorDetail {
	var body ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(testTraceID, body.Error.TraceID)
	return body.Error
}

func (s *handlerSuite) assertError(rec *httptest.ResponseRecorder, status int, code apperrors.ErrorCode) apperrors.ErrorDetail {
	s.Equal(status, rec.Code)
	detail := s.decodeError(rec)
	s.Equal(string(code), detail.Code)
	return detail
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }
