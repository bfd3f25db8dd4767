// Package server assembles the echo instance: global middleware, the error
// handler and every API route.
package server

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nando-castro/api-financas/internal/config"
	"github.com/nando-castro/api-financas/internal/handlers"
	"github.com/nando-castro/api-financas/internal/middleware"
	"github.com/nando-castro/api-financas/internal/repositories"
	"github.com/nando-castro/api-financas/internal/services"
)

const maxBodySize = "1M"

// Handlers groups the HTTP handlers mounted by New.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Categories *handlers.CategoryHandler
	Ledger     *handlers.LedgerHandler
	Statistics *handlers.StatisticsHandler
	Checklist  *handlers.ChecklistHandler
	Cards      *handlers.CardHandler
	Health     *handlers.HealthCheckHandler
}

// Deps is everything New needs besides the handlers.
type Deps struct {
	Config       *config.Config
	Logger       *slog.Logger
	Registerer   prometheus.Registerer
	TokenService services.TokenServiceInterface
	Blacklist    repositories.BlacklistedTokenRepositoryInterface
	RateLimiter  *middleware.RateLimiter
}

func New(deps Deps, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewErrorHandler(deps.Registerer, deps.Logger).Handle

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(deps.Logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RequestMetrics(deps.Registerer))
	e.Use(echomw.BodyLimit(maxBodySize))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: deps.Config.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{
			middleware.TraceIDHeader,
			echo.HeaderContentDisposition,
		},
	}))

	e.GET("/health", h.Health.HealthCheck)
	e.GET("/metrics", h.Health.Metrics())

	api := e.Group("/api/v1", deps.RateLimiter.Middleware())

	auth := api.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)
	auth.POST("/forgot-password", h.Auth.ForgotPassword)
	auth.POST("/reset-password", h.Auth.ResetPassword)

	requireAuth := middleware.RequireAuth(deps.TokenService, deps.Blacklist)
	auth.POST("/logout", h.Auth.Logout, requireAuth)
	auth.GET("/activity", h.Auth.Activity, requireAuth)

	categories := api.Group("/categories", requireAuth)
	categories.GET("", h.Categories.List)
	categories.POST("", h.Categories.Create)
	categories.PUT("/:id", h.Categories.Update)
	categories.DELETE("/:id", h.Categories.Delete)

	ledger := api.Group("/ledger", requireAuth)
	ledger.GET("", h.Ledger.List)
	ledger.POST("", h.Ledger.Create)
	ledger.GET("/export.xlsx", h.Ledger.Export)
	ledger.GET("/kind/:kind", h.Ledger.ListByKind)
	ledger.GET("/balances/:year/:month", h.Ledger.Balance)
	ledger.GET("/:id", h.Ledger.Get)
	ledger.PUT("/:id", h.Ledger.Update)
	ledger.DELETE("/:id", h.Ledger.Delete)

	statistics := api.Group("/statistics", requireAuth)
	statistics.GET("/monthly", h.Statistics.Monthly)
	statistics.GET("/annual", h.Statistics.Annual)
	statistics.GET("/trend", h.Statistics.Trend)
	statistics.GET("/categories", h.Statistics.ByCategory)

	checklist := api.Group("/checklist", requireAuth)
	checklist.GET("/monthly", h.Checklist.Monthly)
	checklist.PATCH("/monthly/bulk", h.Checklist.BulkUpdate)

	cards := api.Group("/cards", requireAuth)
	cards.GET("", h.Cards.List)
	cards.POST("", h.Cards.Create)
	cards.GET("/balances", h.Cards.Balances)
	cards.GET("/:id", h.Cards.Get)
	cards.PATCH("/:id", h.Cards.Update)
	cards.DELETE("/:id", h.Cards.Delete)
	cards.GET("/:id/statement", h.Cards.Statement)
	cards.PATCH("/:id/statement", h.Cards.AdjustStatement)
	cards.GET("/:id/statement/pdf", h.Cards.StatementPDF)
	cards.POST("/:id/entries", h.Cards.CreateEntry)
	cards.PATCH("/:id/entries/:entryId", h.Cards.UpdateEntry)
	cards.DELETE("/:id/entries/:entryId", h.Cards.DeleteEntry)

	return e
}
