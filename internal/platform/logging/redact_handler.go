package logging

import (
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/m-mizutani/masq"
)

// sensitiveKeys are lowercase attribute and header names whose values never
// reach log output.
var sensitiveKeys = []string{
	"authorization",
	"proxy-authorization",
	"cookie",
	"set-cookie",
	"x-api-key",
	"password",
	"secret",
	"token",
}

// sensitiveFragments mark any key containing them as sensitive.
var sensitiveFragments = []string{"token", "secret"}

var (
	// bearerPattern matches "Bearer <token>" values. The token must be at
	// least 16 characters so ledger phrases like "cost bearer rejected" and
	// "Cost Bearer not found." stay readable.
	bearerPattern = regexp.MustCompile(`(?i)\bbearer\s+[a-zA-Z0-9\-._~+/]{16,}=*`)

	// jwtPattern matches header.payload.signature strings. Segments need ten
	// or more characters so version numbers and dates do not match.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	// apiKeyInlinePattern matches "api_key=<value>" style fragments inside
	// free text such as expense descriptions.
	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// IsSensitiveKey reports whether values logged under name must be masked.
// HTTP middleware uses it for request headers so header redaction and the
// handler-level masq filter agree. Matching ignores case.
func IsSensitiveKey(name string) bool {
	lower := strings.ToLower(name)
	if slices.Contains(sensitiveKeys, lower) {
		return true
	}
	return slices.ContainsFunc(sensitiveFragments, func(f string) bool {
		return strings.Contains(lower, f)
	})
}

// newRedactAttr returns the masq ReplaceAttr used by every handler New
// builds. It masks known sensitive keys by name and credential-shaped values
// wherever they appear.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(sensitiveKeys)+5)
	for _, key := range sensitiveKeys {
		opts = append(opts, masq.WithFieldName(key))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyInlinePattern),
	)
	return masq.New(opts...)
}
