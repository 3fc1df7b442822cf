package app

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/jsamuelsen11/expense-ledger/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func timePtr(t time.Time) *time.Time { return &t }

var (
	jan2025 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	jan2026 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
)

// requireAppError asserts err is a *domain.Error with the given kind and message.
func requireAppError(t *testing.T, err error, kind domain.Kind, msg string) {
	t.Helper()

	var aerr *domain.Error
	if !errors.As(err, &aerr) {
		t.Fatalf("error = %v (%T), want *domain.Error", err, err)
	}
	if aerr.Kind != kind {
		t.Errorf("Kind = %v, want %v", aerr.Kind, kind)
	}
	if aerr.Message != msg {
		t.Errorf("Message = %q, want %q", aerr.Message, msg)
	}
}
