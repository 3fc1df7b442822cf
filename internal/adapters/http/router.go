// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/expense-ledger/internal/adapters/http/dto"
	"github.com/jsamuelsen11/expense-ledger/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Unmatched paths answer
// 400 with a plain-text "No such endpoint" body.
func NewRouter(
	costBearerHandler *handlers.CostBearerHandler,
	expenseTypeHandler *handlers.ExpenseTypeHandler,
	expenseEntryHandler *handlers.ExpenseEntryHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, dto.NoSuchEndpoint(req.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, dto.MethodNotAllowed(req.Method))
	})

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/cost_bearers", func(r chi.Router) {
		r.Post("/", costBearerHandler.Create)
		r.Get("/{id}", costBearerHandler.Get)
		r.Patch("/{id}", costBearerHandler.Update)
		r.Delete("/{id}", costBearerHandler.Delete)
	})

	r.Route("/expense_types", func(r chi.Router) {
		r.Post("/", expenseTypeHandler.Create)
		r.Get("/{id}", expenseTypeHandler.Get)
		r.Patch("/{id}", expenseTypeHandler.Update)
		r.Delete("/{id}", expenseTypeHandler.Delete)
	})

	r.Route("/expense_entries", func(r chi.Router) {
		r.Post("/", expenseEntryHandler.Create)
		r.Get("/{id}", expenseEntryHandler.Get)
		r.Patch("/{id}", expenseEntryHandler.Update)
		r.Delete("/{id}", expenseEntryHandler.Delete)
	})

	return r
}
