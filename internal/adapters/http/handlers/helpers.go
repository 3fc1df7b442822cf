package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/expense-ledger/internal/adapters/http/dto"
	"github.com/jsamuelsen11/expense-ledger/internal/platform/logging"
)

// maxJSONBodyBytes caps request bodies at 1 MiB.
const maxJSONBodyBytes = 1 << 20

// parseID reads the {id} path parameter as a UUID.
func parseID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, dto.InvalidID(raw)
	}
	return id, nil
}

// writeJSON encodes v as the response body. Encoding failures can only be
// logged because the status line is already out.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}
}

// decodeJSONBody decodes exactly one JSON value from the request body into
// dst. On failure it writes the error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))

	if err := dec.Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, dto.BodyError(err))
		return false
	}

	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if !errors.As(err, &tooLarge) {
			err = dto.ErrTrailingData
		}
		dto.WriteErrorResponse(w, r, dto.BodyError(err))
		return false
	}
	return true
}
