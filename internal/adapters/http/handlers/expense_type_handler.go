package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/expense-ledger/internal/adapters/http/dto"
	"github.com/jsamuelsen11/expense-ledger/internal/ports"
)

// ExpenseTypeHandler handles HTTP requests for expense types.
type ExpenseTypeHandler struct {
	svc ports.ExpenseTypeService
}

// NewExpenseTypeHandler creates a new ExpenseTypeHandler with the given service port.
func NewExpenseTypeHandler(svc ports.ExpenseTypeService) *ExpenseTypeHandler {
	return &ExpenseTypeHandler{svc: svc}
}

// Create handles POST /expense_types.
func (h *ExpenseTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ExpenseTypeRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	created, err := h.svc.Create(r.Context(), req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToExpenseTypeResponse(created))
}

// Get handles GET /expense_types/{id}.
func (h *ExpenseTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	expenseType, err := h.svc.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToExpenseTypeResponse(expenseType))
}

// Update handles PATCH /expense_types/{id}. The body replaces the stored
// expense type as a whole.
func (h *ExpenseTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ExpenseTypeRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToExpenseTypeResponse(updated))
}

// Delete handles DELETE /expense_types/{id}.
func (h *ExpenseTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
