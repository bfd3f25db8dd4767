package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/nando-castro/api-financas/internal/config"
	"github.com/nando-castro/api-financas/internal/mail"
	"github.com/nando-castro/api-financas/internal/messaging"
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

	if cfg.Messaging.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the mailer")
		os.Exit(1)
	}

	client, err := messaging.NewClient(&cfg.Messaging, logger)
	if err != nil {
		logger.Error("failed to connect to AMQP broker", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	sender := mail.NewSender(&cfg.Mail, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("mailer started", "queue", cfg.Messaging.MailQueue, "smtp_host", cfg.Mail.SMTPHost)
	if err := client.ConsumePasswordResets(ctx, sender.SendPasswordReset); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("mail consumption stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("mailer stopped")
}
