package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"teller-desk/internal/config"
	"teller-desk/internal/database"
	"teller-desk/internal/repositories"
	"teller-desk/internal/server"
	"teller-desk/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg := config.Load()
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("teller desk stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database", slog.String("error", err.Error()))
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	ledgerService := services.NewLedgerService(
		repositories.NewLedgerRepository(db.DB),
		services.NewLedgerLogger(logger),
		services.NewPrometheusMetrics(registry),
		services.NewDemoCustomerGenerator(0),
		cfg.Ledger,
		logger,
	)

	// Reconcile once so the bank gauges are populated before the first
	// mutation.
	reconciliation, err := ledgerService.Reconcile(context.Background())
	if err != nil {
		return fmt.Errorf("failed to reconcile ledger: %w", err)
	}
	logger.Info("ledger loaded",
		slog.Int64("customers", reconciliation.Customers),
		slog.String("total_balance", reconciliation.TotalBalance.StringFixed(2)),
		slog.Bool("balanced", reconciliation.Balanced()),
	)

	srv, err := server.New(server.Dependencies{
		Config:        cfg,
		DB:            db,
		LedgerService: ledgerService,
		Registry:      registry,
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting teller desk",
		slog.String("env", cfg.Server.Environment),
		slog.String("addr", cfg.Server.Address()),
	)

	return srv.Run(ctx)
}

func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
