package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/expense-ledger/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders renders headers as slog attributes ordered by name. Values of
// headers that [logging.IsSensitiveKey] flags are replaced with "[REDACTED]"
// and multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	names := slices.Sorted(maps.Keys(headers))
	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		value := redacted
		if !logging.IsSensitiveKey(name) {
			value = strings.Join(headers[name], ",")
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
