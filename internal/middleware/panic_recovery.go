package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/nando-castro/api-financas/internal/handlers"
)

// PanicRecovery turns a panic into a SYSTEM_001 response and logs the stack.
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				logger.ErrorContext(c.Request().Context(), "panic recovered",
					"trace_id", GetTraceID(c),
					"panic", fmt.Sprint(r),
					"stack_trace", string(debug.Stack()),
					"path", c.Request().URL.Path,
					"method", c.Request().Method)

				if c.Response().Committed {
					return
				}
				err = handlers.SendSystemError(c, fmt.Errorf("panic: %v", r))
			}()

			return next(c)
		}
	}
}
