// Package database opens the SQLite store and runs every storage operation
// through a circuit breaker, an OpenTelemetry client span, and operation
// metrics.
//
// The guard applies processing in this order:
//
//	Circuit Breaker → OTEL Span → (Transaction) → SQL
//
// Construction:
//
//	db, err := database.Open(ctx, &cfg.Database, sqlite.Migrations(), metrics, logger)
//	defer db.Close()
//
// Executing operations:
//
//	err := db.Run(ctx, "cost_bearer.get", func(ctx context.Context, q database.Querier) error {
//	    return q.QueryRowContext(ctx, query, id).Scan(&name)
//	})
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/jsamuelsen11/expense-ledger/internal/domain"
	"github.com/jsamuelsen11/expense-ledger/internal/platform/config"
	"github.com/jsamuelsen11/expense-ledger/internal/platform/telemetry"
)

const (
	driverName = "sqlite"
	systemName = "sqlite"

	// MemoryPath selects a private in-process database.
	MemoryPath = ":memory:"

	// MsgUnavailable is the client-facing message while the breaker rejects calls.
	MsgUnavailable = "Service temporarily unavailable."
)

// Querier is the subset of *sql.DB and *sql.Tx that repositories use.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB wraps a *sql.DB with a circuit breaker, tracing, and metrics.
// It is safe for concurrent use.
type DB struct {
	db      *sql.DB
	breaker *gobreaker.CircuitBreaker[struct{}]
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// Open creates the database directory if needed, opens the SQLite file,
// applies per-connection pragmas, and runs the goose migrations found at the
// root of migrations. If metrics is nil, metric recording is skipped.
func Open(
	ctx context.Context,
	cfg *config.DatabaseConfig,
	migrations fs.FS,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) (*DB, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if cfg.Path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	sqlDB, err := sql.Open(driverName, dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Every in-memory connection is its own database, so the pool must
	// never grow past one.
	maxConns := cfg.MaxOpenConns
	if cfg.Path == MemoryPath {
		maxConns = 1
	}
	sqlDB.SetMaxOpenConns(maxConns)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := migrate(ctx, sqlDB, migrations, logger); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return &DB{
		db:      sqlDB,
		breaker: newBreaker(&cfg.CircuitBreaker, logger),
		metrics: metrics,
		logger:  logger,
	}, nil
}

// Close closes the underlying connection pool.
func (d *DB) Close() error {
	return d.db.Close()
}

// Run executes fn against the connection pool.
func (d *DB) Run(ctx context.Context, op string, fn func(ctx context.Context, q Querier) error) error {
	return d.execute(ctx, op, func(ctx context.Context) error {
		return fn(ctx, d.db)
	})
}

// InTx executes fn inside a transaction. The transaction commits when fn
// returns nil and rolls back otherwise.
func (d *DB) InTx(ctx context.Context, op string, fn func(ctx context.Context, q Querier) error) error {
	return d.execute(ctx, op, func(ctx context.Context) error {
		tx, err := d.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("beginning transaction: %w", err)
		}

		if err := fn(ctx, tx); err != nil {
			_ = tx.Rollback()
			return err
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing transaction: %w", err)
		}
		return nil
	})
}

// Name identifies the store in readiness results. Together with HealthCheck
// it satisfies ports.HealthChecker.
func (d *DB) Name() string {
	return "database"
}

// HealthCheck reports the store's availability. An open breaker fails
// without touching the database; otherwise the pool is pinged.
func (d *DB) HealthCheck(ctx context.Context) error {
	switch state := d.breaker.State(); state {
	case gobreaker.StateClosed:
	case gobreaker.StateHalfOpen:
		return errors.New("database: degraded (circuit breaker half-open)")
	case gobreaker.StateOpen:
		return errors.New("database: failing (circuit breaker open)")
	default:
		return fmt.Errorf("database: unknown circuit breaker state %v", state)
	}

	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database: ping: %w", err)
	}
	return nil
}

func (d *DB) execute(ctx context.Context, op string, fn func(context.Context) error) error {
	start := time.Now()

	_, err := d.breaker.Execute(func() (struct{}, error) {
		spanCtx, span := startSpan(ctx, op)
		defer span.End()

		opErr := fn(spanCtx)
		finishSpan(span, opErr)
		return struct{}{}, opErr
	})

	d.recordMetrics(ctx, op, start, err)

	if isBreakerRejection(err) {
		d.logger.WarnContext(ctx, "storage call rejected",
			slog.String("operation", op),
			slog.Any("error", err),
		)
		return domain.Unavailable(MsgUnavailable)
	}
	return err
}

// isSuccessful decides what the breaker counts as a failure. Domain outcomes
// and caller cancellations say nothing about the health of the store.
func isSuccessful(err error) bool {
	return err == nil ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, context.Canceled)
}

func isBreakerRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

func newBreaker(cfg *config.CircuitBreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[struct{}] {
	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        systemName,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// startSpan creates an OTEL client span for one storage operation.
func startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("database")

	return tracer.Start(ctx, "DB "+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", systemName),
			attribute.String("db.operation", op),
		),
	)
}

// finishSpan records the outcome on the span. Domain outcomes are not span errors.
func finishSpan(span trace.Span, err error) {
	if err == nil || isSuccessful(err) {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// recordMetrics records operation duration and count. Recorded outside the
// breaker so that rejections are captured. Safe to call with nil metrics.
func (d *DB) recordMetrics(ctx context.Context, op string, start time.Time, err error) {
	if d.metrics == nil {
		return
	}

	result := "success"
	switch {
	case isBreakerRejection(err):
		result = "circuit_open"
	case errors.Is(err, domain.ErrNotFound):
		result = "not_found"
	case err != nil && !isSuccessful(err):
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(systemName),
		telemetry.AttrDBOperation.String(op),
		telemetry.AttrResult.String(result),
	)

	d.metrics.DBOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	d.metrics.DBOperationTotal.Add(ctx, 1, attrs)
}

// dsn builds a modernc.org/sqlite connection string. Pragmas passed this way
// run on every new pooled connection.
func dsn(cfg *config.DatabaseConfig) string {
	pragmas := []string{
		"_pragma=foreign_keys(1)",
		fmt.Sprintf("_pragma=busy_timeout(%d)", cfg.BusyTimeout.Milliseconds()),
		"_txlock=immediate",
	}
	if cfg.Path != MemoryPath {
		pragmas = append(pragmas, "_pragma=journal_mode(WAL)")
	}
	return "file:" + cfg.Path + "?" + strings.Join(pragmas, "&")
}

func migrate(ctx context.Context, db *sql.DB, migrations fs.FS, logger *slog.Logger) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations)
	if err != nil {
		return fmt.Errorf("creating migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return err
	}

	for _, r := range results {
		logger.InfoContext(ctx, "applied migration",
			slog.Int64("version", r.Source.Version),
			slog.String("path", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}
	return nil
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
