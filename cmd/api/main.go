package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/nando-castro/api-financas/internal/config"
	"github.com/nando-castro/api-financas/internal/database"
	"github.com/nando-castro/api-financas/internal/handlers"
	"github.com/nando-castro/api-financas/internal/messaging"
	"github.com/nando-castro/api-financas/internal/middleware"
	"github.com/nando-castro/api-financas/internal/repositories"
	"github.com/nando-castro/api-financas/internal/server"
	"github.com/nando-castro/api-financas/internal/services"
)

const (
	shutdownTimeout      = 15 * time.Second
	tokenCleanupInterval = time.Hour
	visitorSweepInterval = time.Minute
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var mailer services.MailPublisherInterface
	if cfg.Messaging.AMQPURL != "" {
		client, err := messaging.NewClient(&cfg.Messaging, logger)
		if err != nil {
			logger.Error("failed to connect to AMQP broker", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		mailer = messaging.NewBreakingPublisher(client, messaging.DefaultBreakerConfig())
	} else {
		logger.Info("AMQP_URL not set, password reset mails disabled")
		mailer = messaging.NewLogPublisher(logger)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	store := repositories.NewStore(db.DB)
	metrics := services.NewPrometheusMetrics(registry)
	auditLogger := services.NewAuditLogger(logger)
	auditService := services.NewAuditService(store.AuditLogs())
	clock := services.Clock(time.Now)

	tokenService := services.NewTokenService(&cfg.JWT)
	passwordService := services.NewPasswordService(cfg.Security.BCryptCost, cfg.Security.PasswordMinLength)
	authService := services.NewAuthService(store, passwordService, tokenService, mailer, metrics, cfg.Security.PasswordResetTTL, logger)
	balanceService := services.NewMonthlyBalanceService(store, auditLogger, metrics, logger)
	ledgerService := services.NewLedgerService(store, balanceService, auditLogger, metrics, logger)
	cardService := services.NewCardService(store, logger)
	statementService := services.NewStatementService(store, auditLogger, metrics, logger)

	rateLimiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, 2*cfg.Security.RateLimitPerSecond)
	go rateLimiter.Run(ctx, visitorSweepInterval)
	go cleanupTokens(ctx, db, logger)

	e := server.New(server.Deps{
		Config:       cfg,
		Logger:       logger,
		Registerer:   registry,
		TokenService: tokenService,
		Blacklist:    store.BlacklistedTokens(),
		RateLimiter:  rateLimiter,
	}, server.Handlers{
		Auth:       handlers.NewAuthHandler(authService, auditService),
		Categories: handlers.NewCategoryHandler(services.NewCategoryService(store, logger)),
		Ledger:     handlers.NewLedgerHandler(ledgerService, balanceService, clock),
		Statistics: handlers.NewStatisticsHandler(services.NewStatisticsService(store, logger, clock)),
		Checklist:  handlers.NewChecklistHandler(services.NewChecklistService(store, auditLogger, metrics, logger, clock)),
		Cards:      handlers.NewCardHandler(cardService, statementService, clock),
		Health:     handlers.NewHealthCheckHandler(db.DB, registry),
	})
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	go func() {
		logger.Info("starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	logger.Info("server stopped")
}

func cleanupTokens(ctx context.Context, db *database.DB, logger *slog.Logger) {
	ticker := time.NewTicker(tokenCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := db.CleanupExpiredTokens(ctx); err != nil {
				logger.Error("expired token cleanup failed", "error", err)
			}
		}
	}
}
