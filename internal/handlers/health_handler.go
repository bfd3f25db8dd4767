package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	apperrors "github.com/nando-castro/api-financas/internal/errors"
)

const healthPingTimeout = 2 * time.Second

// HealthCheckHandler reports liveness for the external keep-alive cron and
// exposes the Prometheus registry.
type HealthCheckHandler struct {
	db       *gorm.DB
	gatherer prometheus.Gatherer
}

func NewHealthCheckHandler(db *gorm.DB, gatherer prometheus.Gatherer) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, gatherer: gatherer}
}

// HealthCheck pings the database.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string}
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return SendError(c, apperrors.SystemServiceUnavailable, apperrors.WithDetails("Database connection failed"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return SendError(c, apperrors.SystemServiceUnavailable, apperrors.WithDetails("Database connection failed"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthCheckHandler) Metrics() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
}
