package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/expense-ledger/internal/adapters/http/dto"
	"github.com/jsamuelsen11/expense-ledger/internal/ports"
)

// ExpenseEntryHandler handles HTTP requests for expense entries.
type ExpenseEntryHandler struct {
	svc ports.ExpenseEntryService
}

// NewExpenseEntryHandler creates a new ExpenseEntryHandler with the given service port.
func NewExpenseEntryHandler(svc ports.ExpenseEntryService) *ExpenseEntryHandler {
	return &ExpenseEntryHandler{svc: svc}
}

// Create handles POST /expense_entries.
func (h *ExpenseEntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ExpenseEntryRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	created, err := h.svc.Create(r.Context(), req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToExpenseEntryResponse(created))
}

// Get handles GET /expense_entries/{id}.
func (h *ExpenseEntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	entry, err := h.svc.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToExpenseEntryResponse(entry))
}

// Update handles PATCH /expense_entries/{id}. The body replaces the stored
// expense entry, cost shares included.
func (h *ExpenseEntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ExpenseEntryRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToExpenseEntryResponse(updated))
}

// Delete handles DELETE /expense_entries/{id}.
func (h *ExpenseEntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
