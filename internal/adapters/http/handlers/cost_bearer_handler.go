// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/expense-ledger/internal/adapters/http/dto"
	"github.com/jsamuelsen11/expense-ledger/internal/ports"
)

// CostBearerHandler handles HTTP requests for cost bearers.
type CostBearerHandler struct {
	svc ports.CostBearerService
}

// NewCostBearerHandler creates a new CostBearerHandler with the given service port.
func NewCostBearerHandler(svc ports.CostBearerService) *CostBearerHandler {
	return &CostBearerHandler{svc: svc}
}

// Create handles POST /cost_bearers.
func (h *CostBearerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CostBearerRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	created, err := h.svc.Create(r.Context(), req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCostBearerResponse(created))
}

// Get handles GET /cost_bearers/{id}.
func (h *CostBearerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	bearer, err := h.svc.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCostBearerResponse(bearer))
}

// Update handles PATCH /cost_bearers/{id}. The body replaces the stored
// cost bearer as a whole.
func (h *CostBearerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CostBearerRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCostBearerResponse(updated))
}

// Delete handles DELETE /cost_bearers/{id}.
func (h *CostBearerHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
