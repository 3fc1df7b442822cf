// Package sqlite implements the repository ports on top of the SQLite store
// opened by platform/database. Timestamps are stored as RFC 3339 text in UTC
// and identifiers as canonical UUID strings.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/google/uuid"
	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jsamuelsen11/expense-ledger/internal/platform/database"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrations returns the schema migrations for platform/database.Open.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		panic(fmt.Sprintf("sqlite: embedded migrations: %v", err))
	}
	return sub
}

const timeLayout = time.RFC3339Nano

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing stored time %q: %w", s, err)
	}
	return t, nil
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parsing stored id %q: %w", s, err)
	}
	return id, nil
}

// Store is the part of *database.DB the repositories need.
type Store interface {
	Run(ctx context.Context, op string, fn func(ctx context.Context, q database.Querier) error) error
	InTx(ctx context.Context, op string, fn func(ctx context.Context, q database.Querier) error) error
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var sqliteErr *moderncsqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return true
	}
	// Primary result code only: fall back to the message.
	return code == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "UNIQUE")
}

// requireAffected turns "no row matched" into err.
func requireAffected(res sql.Result, err error) error {
	n, rowsErr := res.RowsAffected()
	if rowsErr != nil {
		return fmt.Errorf("reading affected rows: %w", rowsErr)
	}
	if n == 0 {
		return err
	}
	return nil
}
