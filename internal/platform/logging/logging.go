// Package logging provides structured logger construction and context propagation
// using the standard library slog package.
//
// Logger construction:
//
//	logger := logging.New("info", "json", os.Stderr)
//
// Context propagation (used by middleware to enrich with request metadata):
//
//	ctx = logging.WithLogger(ctx, logger)
//	logger = logging.FromContext(ctx)
//
// Error logging convention for application services:
//
//	logger.ErrorContext(ctx, "failed to fetch cost bearer",
//	    slog.String("operation", "Get"),
//	    slog.String("id", id.String()),
//	    slog.Any("error", err),
//	)
//
// Every error log should include the operation name, entity identifiers, and
// the full error chain via slog.Any("error", err). When logging middleware is
// active, the context carries request_id and correlation_id automatically.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

type contextKey struct{}

// New builds the service logger writing to w.
//
// level accepts anything slog.Level understands ("debug", "INFO", "warn+2",
// ...); unparseable values fall back to info. At debug and below the source
// location is included.
//
// format "json" (and any unknown value) emits JSON lines, "text" emits
// logfmt-style key=value lines and "console" emits colorized lines for a
// developer terminal. Every format applies the same redaction.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)
	addSource := lvl <= slog.LevelDebug
	redact := newRedactAttr()

	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: lvl, AddSource: addSource, ReplaceAttr: redact,
		}))
	case "console":
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level: lvl, AddSource: addSource, ReplaceAttr: redact, TimeFormat: time.TimeOnly,
		}))
	default:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: lvl, AddSource: addSource, ReplaceAttr: redact,
		}))
	}
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
