package services

import (
	"context"
	"log/slog"
	"time"

	"teller-desk/internal/models"
)

type LedgerLogger struct {
	logger *slog.Logger
}

func NewLedgerLogger(logger *slog.Logger) LedgerLoggerInterface {
	return &LedgerLogger{
		logger: logger,
	}
}

func (ll *LedgerLogger) LogAccountOpened(ctx context.Context, customerID int64, accountNumber string, initialDeposit string) {
	ll.logger.InfoContext(ctx, "account opened",
		slog.String("event_type", "account_opened"),
		slog.Int64("customer_id", customerID),
		slog.String("account_number", accountNumber),
		slog.String("initial_deposit", initialDeposit),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogTransactionPosted(ctx context.Context, entry *models.Transaction, oldBalance, newBalance string) {
	ll.logger.InfoContext(ctx, "transaction posted",
		slog.String("event_type", "transaction_posted"),
		slog.Int64("customer_id", entry.CustomerID),
		slog.String("kind", string(entry.Kind)),
		slog.Int("sequence", entry.Sequence),
		slog.String("amount", entry.Amount.String()),
		slog.String("old_balance", oldBalance),
		slog.String("new_balance", newBalance),
		slog.String("reference", entry.Reference),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogTransactionRejected(ctx context.Context, operation string, customerID int64, amount string, reason string) {
	ll.logger.WarnContext(ctx, "transaction rejected",
		slog.String("event_type", "transaction_rejected"),
		slog.String("operation", operation),
		slog.Int64("customer_id", customerID),
		slog.String("amount", amount),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogBankTotalsUpdated(ctx context.Context, totalBalance, totalLoans string) {
	ll.logger.DebugContext(ctx, "bank totals updated",
		slog.String("event_type", "bank_totals_updated"),
		slog.String("total_balance", totalBalance),
		slog.String("total_loans", totalLoans),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogDemoCustomersGenerated(ctx context.Context, count int, durationMs int64) {
	ll.logger.InfoContext(ctx, "demo customers generated",
		slog.String("event_type", "demo_customers_generated"),
		slog.Int("count", count),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value("correlation_id").(string); ok {
		return correlationID
	}

	if requestID, ok := ctx.Value("request_id").(string); ok {
		return requestID
	}

	return ""
}
