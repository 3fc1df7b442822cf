package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/expense-ledger/internal/adapters/http/dto"
	"github.com/jsamuelsen11/expense-ledger/internal/platform/logging"
	"github.com/jsamuelsen11/expense-ledger/internal/ports"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler backed by registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. It answers 200 while the process runs.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, dto.LivenessResponse{Status: dto.HealthOK})
}

// Readiness handles GET /health/ready. It answers 200 when every registered
// dependency passes its check and 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp, healthy := dto.NewReadinessResponse(h.registry.CheckAll(ctx))

	code := http.StatusOK
	if !healthy {
		code = http.StatusServiceUnavailable
		logger := logging.FromContext(ctx)
		for name, reason := range resp.Checks {
			if reason != dto.HealthOK {
				logger.WarnContext(ctx, "readiness check failed",
					slog.String("check", name),
					slog.String("reason", reason),
				)
			}
		}
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, code, resp)
}
