package sqlite_test

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/expense-ledger/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/expense-ledger/internal/domain"
	"github.com/jsamuelsen11/expense-ledger/internal/platform/config"
	"github.com/jsamuelsen11/expense-ledger/internal/platform/database"
)

var (
	jan2025 = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	jan2026 = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
)

func timePtr(t time.Time) *time.Time { return &t }

// openDB opens a migrated database in a per-test temp directory.
func openDB(t *testing.T) *database.DB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Path:         filepath.Join(t.TempDir(), "ledger.db"),
		BusyTimeout:  time.Second,
		MaxOpenConns: 1,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}

	db, err := database.Open(context.Background(), cfg, sqlite.Migrations(), nil, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("database.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func requireNotFound(t *testing.T, err error, wantMsg string) {
	t.Helper()

	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	var domainErr *domain.Error
	if !errors.As(err, &domainErr) {
		t.Fatalf("error = %T, want *domain.Error", err)
	}
	if domainErr.Message != wantMsg {
		t.Errorf("message = %q, want %q", domainErr.Message, wantMsg)
	}
}
