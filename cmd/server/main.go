// Package main is the entry point for the expense ledger service. It wires all
// dependencies using samber/do v2, opens the SQLite store, starts the HTTP
// server, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/expense-ledger/internal/adapters/http"
	"github.com/jsamuelsen11/expense-ledger/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/expense-ledger/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/expense-ledger/internal/adapters/storage/sqlite"

	"github.com/jsamuelsen11/expense-ledger/internal/app"
	"github.com/jsamuelsen11/expense-ledger/internal/platform/config"
	"github.com/jsamuelsen11/expense-ledger/internal/platform/database"
	"github.com/jsamuelsen11/expense-ledger/internal/platform/health"
	"github.com/jsamuelsen11/expense-ledger/internal/platform/logging"
	"github.com/jsamuelsen11/expense-ledger/internal/platform/telemetry"
	"github.com/jsamuelsen11/expense-ledger/internal/ports"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	tel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, tel.Metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph, opening and
	// migrating the database on the way).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		_ = tel.Shutdown(ctx)
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[*health.Registry](injector)
	db := do.MustInvoke[*database.DB](injector)
	registry.Register(db)

	// Serve until SIGINT/SIGTERM; Run drains in-flight requests before
	// returning.
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := server.Run(sigCtx)
	if sigCtx.Err() != nil {
		logger.Info("received shutdown signal")
	}
	if serveErr != nil {
		logger.Error("http server stopped with error", slog.Any("error", serveErr))
	}

	// No requests are in flight any more; release the store.
	if err := db.Close(); err != nil {
		logger.Error("database close error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := tel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	if serveErr != nil {
		return fmt.Errorf("server failed: %w", serveErr)
	}
	return nil
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*database.DB, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return database.Open(ctx, &cfg.Database, sqlite.Migrations(), metrics, logger)
	})

	do.Provide(injector, func(i do.Injector) (*sqlite.CostBearerRepository, error) {
		return sqlite.NewCostBearerRepository(do.MustInvoke[*database.DB](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*sqlite.ExpenseTypeRepository, error) {
		return sqlite.NewExpenseTypeRepository(do.MustInvoke[*database.DB](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*sqlite.ExpenseEntryRepository, error) {
		return sqlite.NewExpenseEntryRepository(do.MustInvoke[*database.DB](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CostBearerService, error) {
		repo := do.MustInvoke[*sqlite.CostBearerRepository](i)
		return app.NewCostBearerService(repo, repo, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ExpenseTypeService, error) {
		repo := do.MustInvoke[*sqlite.ExpenseTypeRepository](i)
		return app.NewExpenseTypeService(repo, repo, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ExpenseEntryService, error) {
		repo := do.MustInvoke[*sqlite.ExpenseEntryRepository](i)
		return app.NewExpenseEntryService(repo, repo, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*health.Registry, error) {
		return health.New(
			health.WithCheckTimeout(cfg.Health.CheckTimeout),
			health.WithMaxConcurrent(cfg.Health.MaxConcurrent),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.CostBearerHandler, error) {
		return handlers.NewCostBearerHandler(do.MustInvoke[ports.CostBearerService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ExpenseTypeHandler, error) {
		return handlers.NewExpenseTypeHandler(do.MustInvoke[ports.ExpenseTypeService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ExpenseEntryHandler, error) {
		return handlers.NewExpenseEntryHandler(do.MustInvoke[ports.ExpenseEntryService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[*health.Registry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(
			do.MustInvoke[*handlers.CostBearerHandler](i),
			do.MustInvoke[*handlers.ExpenseTypeHandler](i),
			do.MustInvoke[*handlers.ExpenseEntryHandler](i),
			do.MustInvoke[*handlers.HealthHandler](i),
			middleware.Stack(middleware.StackOptions{
				Logger:         logger,
				Metrics:        metrics,
				RequestTimeout: cfg.Server.RequestTimeout,
			})...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
