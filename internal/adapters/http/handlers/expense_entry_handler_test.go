package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/expense-ledger/internal/adapters/http/dto"
	"github.com/jsamuelsen11/expense-ledger/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/expense-ledger/internal/domain"
	"github.com/jsamuelsen11/expense-ledger/internal/domain/expenseentry"
	"github.com/jsamuelsen11/expense-ledger/internal/ports"
	"github.com/jsamuelsen11/expense-ledger/mocks"
)

func newExpenseEntryHandler(t *testing.T) (*handlers.ExpenseEntryHandler, *mocks.MockExpenseEntryService) {
	t.Helper()
	svc := mocks.NewMockExpenseEntryService(t)
	return handlers.NewExpenseEntryHandler(svc), svc
}

func TestExpenseEntryCreate_Success(t *testing.T) {
	t.Parallel()
	h, svc := newExpenseEntryHandler(t)

	bearerA, bearerB, expenseType := uuid.New(), uuid.New(), uuid.New()
	shares := []expenseentry.CostShare{
		{CostBearerID: bearerA, Amount: 12.5},
		{CostBearerID: bearerB, Amount: -12.5},
	}
	created := expenseentry.Restore(uuid.New(), jan2025, shares, expenseType, "Lunch")

	svc.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in ports.ExpenseEntryNew) bool {
		return len(in.CostShares) == 2 &&
			in.CostShares[0] == shares[0] &&
			in.CostShares[1] == shares[1] &&
			in.ExpenseType == expenseType &&
			in.ExpenseDate == nil
	})).Return(created, nil)

	body := jsonBody(t, map[string]any{
		"cost_shares": []map[string]any{
			{"cost_bearer_id": bearerA, "amount": 12.5},
			{"cost_bearer_id": bearerB, "amount": -12.5},
		},
		"expense_type": expenseType,
		"description":  "Lunch",
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/expense_entries", body)
	h.Create(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ExpenseEntryResponse](t, rec)
	if resp.ID != created.ID() {
		t.Errorf("ID = %v, want %v", resp.ID, created.ID())
	}
	if len(resp.CostShares) != 2 || resp.CostShares[0].CostBearerID != bearerA {
		t.Errorf("CostShares = %+v, want input order", resp.CostShares)
	}
}

func TestExpenseEntryCreate_ValidationFailed(t *testing.T) {
	t.Parallel()
	h, svc := newExpenseEntryHandler(t)

	svc.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, domain.ValidationFailed("Json without valid cost shares."))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/expense_entries",
		rawBody(`{"cost_shares":[],"expense_type":"`+uuid.NewString()+`","description":"Lunch"}`))
	h.Create(rec, req)

	requireStatus(t, rec, http.StatusUnprocessableEntity)
	requireText(t, rec, "Json without valid cost shares.")
}

func TestExpenseEntryCreate_InvalidUUIDInBody(t *testing.T) {
	t.Parallel()
	h, _ := newExpenseEntryHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/expense_entries",
		rawBody(`{"cost_shares":[],"expense_type":"nope","description":"Lunch"}`))
	h.Create(rec, req)

	requireStatus(t, rec, http.StatusUnprocessableEntity)
}

func TestExpenseEntryGet(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		h, svc := newExpenseEntryHandler(t)

		id := uuid.New()
		entry := expenseentry.Restore(id, jan2025,
			[]expenseentry.CostShare{{CostBearerID: uuid.New(), Amount: 3}}, uuid.New(), "Coffee")
		svc.EXPECT().Get(mock.Anything, id).Return(entry, nil)

		rec := httptest.NewRecorder()
		req := idRequest(http.MethodGet, "/expense_entries/", id.String(), nil)
		h.Get(rec, req)

		requireStatus(t, rec, http.StatusOK)
		resp := decodeJSON[dto.ExpenseEntryResponse](t, rec)
		if resp.Description != "Coffee" || !resp.ExpenseDate.Equal(jan2025) {
			t.Errorf("response = %+v, want Coffee on %v", resp, jan2025)
		}
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		h, svc := newExpenseEntryHandler(t)

		id := uuid.New()
		svc.EXPECT().Get(mock.Anything, id).Return(nil, domain.NotFound(expenseentry.NotFoundMessage))

		rec := httptest.NewRecorder()
		req := idRequest(http.MethodGet, "/expense_entries/", id.String(), nil)
		h.Get(rec, req)

		requireStatus(t, rec, http.StatusNotFound)
		requireText(t, rec, "Expense entry not found.")
	})
}

func TestExpenseEntryUpdate_PassesPathID(t *testing.T) {
	t.Parallel()
	h, svc := newExpenseEntryHandler(t)

	id := uuid.New()
	bearer := uuid.New()
	expenseType := uuid.New()
	updated := expenseentry.Restore(id, jan2025,
		[]expenseentry.CostShare{{CostBearerID: bearer, Amount: 9}}, expenseType, "Taxi")
	svc.EXPECT().Update(mock.Anything, id, mock.AnythingOfType("ports.ExpenseEntryNew")).Return(updated, nil)

	body := jsonBody(t, map[string]any{
		"cost_shares":  []map[string]any{{"cost_bearer_id": bearer, "amount": 9}},
		"expense_type": expenseType,
		"description":  "Taxi",
		"expense_date": jan2025,
	})
	rec := httptest.NewRecorder()
	req := idRequest(http.MethodPatch, "/expense_entries/", id.String(), body)
	h.Update(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestExpenseEntryDelete_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newExpenseEntryHandler(t)

	id := uuid.New()
	svc.EXPECT().Delete(mock.Anything, id).Return(domain.NotFound(expenseentry.NotFoundMessage))

	rec := httptest.NewRecorder()
	req := idRequest(http.MethodDelete, "/expense_entries/", id.String(), nil)
	h.Delete(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
	requireText(t, rec, "Expense entry not found.")
}
