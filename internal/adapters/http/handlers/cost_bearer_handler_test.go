package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/expense-ledger/internal/adapters/http/dto"
	"github.com/jsamuelsen11/expense-ledger/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/expense-ledger/internal/domain"
	"github.com/jsamuelsen11/expense-ledger/internal/domain/costbearer"
	"github.com/jsamuelsen11/expense-ledger/internal/ports"
	"github.com/jsamuelsen11/expense-ledger/mocks"
)

func newCostBearerHandler(t *testing.T) (*handlers.CostBearerHandler, *mocks.MockCostBearerService) {
	t.Helper()
	svc := mocks.NewMockCostBearerService(t)
	return handlers.NewCostBearerHandler(svc), svc
}

// --- Create ---

func TestCostBearerCreate_Success(t *testing.T) {
	t.Parallel()
	h, svc := newCostBearerHandler(t)

	to := jan2026
	created := costbearer.Restore(uuid.New(), "Barclays Credit Card", jan2025, &to)
	svc.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in ports.CostBearerNew) bool {
		return in.Name == "Barclays Credit Card" && in.ExistsFrom.Equal(jan2025) && in.ExistsTo != nil
	})).Return(created, nil)

	body := jsonBody(t, dto.CostBearerRequest{Name: "Barclays Credit Card", ExistsFrom: jan2025, ExistsTo: &to})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cost_bearers", body)
	h.Create(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.CostBearerResponse](t, rec)
	if resp.ID != created.ID() {
		t.Errorf("ID = %v, want %v", resp.ID, created.ID())
	}
	if resp.ExistsTo == nil || !resp.ExistsTo.Equal(jan2026) {
		t.Errorf("ExistsTo = %v, want %v", resp.ExistsTo, jan2026)
	}
}

func TestCostBearerCreate_ValidationFailed(t *testing.T) {
	t.Parallel()
	h, svc := newCostBearerHandler(t)

	svc.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, domain.ValidationFailed("Json without valid name."))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cost_bearers", rawBody(`{"name":"   ","exists_from":"2025-01-01T00:00:00Z"}`))
	h.Create(rec, req)

	requireStatus(t, rec, http.StatusUnprocessableEntity)
	requireText(t, rec, "Json without valid name.")
}

func TestCostBearerCreate_MalformedJSON(t *testing.T) {
	t.Parallel()
	h, _ := newCostBearerHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cost_bearers", rawBody("{bad"))
	h.Create(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCostBearerCreate_TrailingData(t *testing.T) {
	t.Parallel()
	h, _ := newCostBearerHandler(t)

	rec := httptest.NewRecorder()
	body := `{"name":"Alice","exists_from":"2025-01-01T00:00:00Z"} {"name":"Bob"}`
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/cost_bearers", rawBody(body)))

	requireStatus(t, rec, http.StatusBadRequest)
	requireText(t, rec, "Failed to parse the request body as JSON: trailing characters after the JSON value")
}

func TestCostBearerCreate_WrongFieldType(t *testing.T) {
	t.Parallel()
	h, _ := newCostBearerHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cost_bearers", rawBody(`{"name":12345,"exists_from":"2025-01-01T00:00:00Z"}`))
	h.Create(rec, req)

	requireStatus(t, rec, http.StatusUnprocessableEntity)
}

// --- Get ---

func TestCostBearerGet_Success(t *testing.T) {
	t.Parallel()
	h, svc := newCostBearerHandler(t)

	id := uuid.New()
	svc.EXPECT().Get(mock.Anything, id).Return(costbearer.Restore(id, "Cash", jan2025, nil), nil)

	rec := httptest.NewRecorder()
	req := idRequest(http.MethodGet, "/cost_bearers/", id.String(), nil)
	h.Get(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[map[string]any](t, rec)
	if resp["exists_to"] != nil {
		t.Errorf("exists_to = %v, want null", resp["exists_to"])
	}
}

func TestCostBearerGet_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newCostBearerHandler(t)

	id := uuid.New()
	svc.EXPECT().Get(mock.Anything, id).Return(nil, domain.NotFound(costbearer.NotFoundMessage))

	rec := httptest.NewRecorder()
	req := idRequest(http.MethodGet, "/cost_bearers/", id.String(), nil)
	h.Get(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
	requireText(t, rec, "Cost Bearer not found.")
}

func TestCostBearerGet_InvalidID(t *testing.T) {
	t.Parallel()
	h, _ := newCostBearerHandler(t)

	rec := httptest.NewRecorder()
	req := idRequest(http.MethodGet, "/cost_bearers/", "not-a-uuid", nil)
	h.Get(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	requireText(t, rec, "Invalid id: not-a-uuid")
}

// --- Update ---

func TestCostBearerUpdate_Success(t *testing.T) {
	t.Parallel()
	h, svc := newCostBearerHandler(t)

	id := uuid.New()
	svc.EXPECT().Update(mock.Anything, id, mock.AnythingOfType("ports.CostBearerNew")).
		Return(costbearer.Restore(id, "Renamed", jan2025, nil), nil)

	body := jsonBody(t, dto.CostBearerRequest{Name: "Renamed", ExistsFrom: jan2025})
	rec := httptest.NewRecorder()
	req := idRequest(http.MethodPatch, "/cost_bearers/", id.String(), body)
	h.Update(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.CostBearerResponse](t, rec)
	if resp.ID != id || resp.Name != "Renamed" {
		t.Errorf("response = %+v, want id %v and name Renamed", resp, id)
	}
}

func TestCostBearerUpdate_InvalidID(t *testing.T) {
	t.Parallel()
	h, _ := newCostBearerHandler(t)

	rec := httptest.NewRecorder()
	req := idRequest(http.MethodPatch, "/cost_bearers/", "42", rawBody(`{}`))
	h.Update(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- Delete ---

func TestCostBearerDelete_Success(t *testing.T) {
	t.Parallel()
	h, svc := newCostBearerHandler(t)

	id := uuid.New()
	svc.EXPECT().Delete(mock.Anything, id).Return(nil)

	rec := httptest.NewRecorder()
	req := idRequest(http.MethodDelete, "/cost_bearers/", id.String(), nil)
	h.Delete(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}

func TestCostBearerDelete_Unavailable(t *testing.T) {
	t.Parallel()
	h, svc := newCostBearerHandler(t)

	id := uuid.New()
	svc.EXPECT().Delete(mock.Anything, id).Return(domain.Unavailable("Service temporarily unavailable."))

	rec := httptest.NewRecorder()
	req := idRequest(http.MethodDelete, "/cost_bearers/", id.String(), nil)
	h.Delete(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)
	requireText(t, rec, "Service temporarily unavailable.")
}

func TestCostBearerDelete_InternalError(t *testing.T) {
	t.Parallel()
	h, svc := newCostBearerHandler(t)

	id := uuid.New()
	svc.EXPECT().Delete(mock.Anything, id).Return(errors.New("deleting cost bearer: disk I/O error"))

	rec := httptest.NewRecorder()
	req := idRequest(http.MethodDelete, "/cost_bearers/", id.String(), nil)
	h.Delete(rec, req)

	requireStatus(t, rec, http.StatusInternalServerError)
	requireText(t, rec, dto.MsgInternal)
}
