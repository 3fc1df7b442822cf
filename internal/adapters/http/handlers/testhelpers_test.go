package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

var (
	jan2025 = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	jan2026 = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// idRequest builds a request for collection+id with the chi "id" param
// already resolved, as the router would leave it.
func idRequest(method, collection, id string, body io.Reader) *http.Request {
	r := httptest.NewRequest(method, collection+id, body)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("encoding request body: %v", err)
	}
	return bytes.NewBuffer(b)
}

func rawBody(s string) *strings.Reader {
	return strings.NewReader(s)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decoding response body %q: %v", rec.Body.String(), err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

func requireText(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	if got := rec.Body.String(); got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
}
