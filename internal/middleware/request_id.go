package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/nando-castro/api-financas/internal/handlers"
	"github.com/nando-castro/api-financas/internal/services"
)

const TraceIDHeader = "X-Trace-ID"

// RequestID reuses the caller's X-Trace-ID or mints one. The id is echoed in
// the response, stored on the echo context and carried in the request
// context as the audit correlation id.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := req.Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.Set(handlers.TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			c.SetRequest(req.WithContext(services.WithCorrelationID(req.Context(), traceID)))
			return next(c)
		}
	}
}

// GetTraceID returns the request's trace id, or "" outside RequestID.
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(handlers.TraceIDContextKey).(string)
	return traceID
}
