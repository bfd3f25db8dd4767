package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type contextKey string

const correlationIDKey contextKey = "correlation_id"

// WithCorrelationID stores the request trace id for domain event logs.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogStatementEntryRecorded(ctx context.Context, cardID, statementID, entryID uuid.UUID, kind, amount string) {
	al.logger.InfoContext(ctx, "statement entry recorded",
		slog.String("event_type", "statement_entry_recorded"),
		slog.String("card_id", cardID.String()),
		slog.String("statement_id", statementID.String()),
		slog.String("entry_id", entryID.String()),
		slog.String("kind", kind),
		slog.String("amount", amount),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogStatementEntryMoved(ctx context.Context, entryID, fromStatementID, toStatementID uuid.UUID) {
	al.logger.InfoContext(ctx, "statement entry moved",
		slog.String("event_type", "statement_entry_moved"),
		slog.String("entry_id", entryID.String()),
		slog.String("from_statement_id", fromStatementID.String()),
		slog.String("to_statement_id", toStatementID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogStatementEntryDeleted(ctx context.Context, cardID, statementID, entryID uuid.UUID) {
	al.logger.InfoContext(ctx, "statement entry deleted",
		slog.String("event_type", "statement_entry_deleted"),
		slog.String("card_id", cardID.String()),
		slog.String("statement_id", statementID.String()),
		slog.String("entry_id", entryID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogStatementAdjusted(ctx context.Context, cardID, statementID uuid.UUID, override, adjustment string) {
	al.logger.InfoContext(ctx, "statement adjusted",
		slog.String("event_type", "statement_adjusted"),
		slog.String("card_id", cardID.String()),
		slog.String("statement_id", statementID.String()),
		slog.String("month_limit_override", override),
		slog.String("adjustment", adjustment),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogStatementResynced(ctx context.Context, statementID uuid.UUID, totalPaid string) {
	al.logger.DebugContext(ctx, "statement total paid resynced",
		slog.String("event_type", "statement_resynced"),
		slog.String("statement_id", statementID.String()),
		slog.String("total_paid", totalPaid),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogBalanceRecomputed(ctx context.Context, userID uuid.UUID, period string, current, accumulated string) {
	al.logger.DebugContext(ctx, "monthly balance recomputed",
		slog.String("event_type", "balance_recomputed"),
		slog.String("user_id", userID.String()),
		slog.String("period", period),
		slog.String("current_balance", current),
		slog.String("accumulated_balance", accumulated),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogBalanceCascade(ctx context.Context, userID uuid.UUID, from, through string, months int) {
	al.logger.InfoContext(ctx, "monthly balances refreshed",
		slog.String("event_type", "balance_cascade"),
		slog.String("user_id", userID.String()),
		slog.String("from", from),
		slog.String("through", through),
		slog.Int("months", months),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogChecklistUpdated(ctx context.Context, userID uuid.UUID, competence string, updated int) {
	al.logger.InfoContext(ctx, "checklist updated",
		slog.String("event_type", "checklist_updated"),
		slog.String("user_id", userID.String()),
		slog.String("competence", competence),
		slog.Int("updated", updated),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogLedgerEntryChanged(ctx context.Context, userID, entryID uuid.UUID, operation string) {
	al.logger.InfoContext(ctx, "ledger entry changed",
		slog.String("event_type", "ledger_entry_changed"),
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entryID.String()),
		slog.String("operation", operation),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

// CorrelationID returns the id stored by WithCorrelationID, or "".
func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(correlationIDKey).(string); ok {
		return correlationID
	}

	return ""
}
