package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/linoMlv/abacus/internal/auth"
	"github.com/linoMlv/abacus/internal/service"
	"github.com/linoMlv/abacus/internal/storage"
)

// errorResponse is the JSON error body: {"detail": "..."}.
type errorResponse struct {
	Detail string `json:"detail"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// WriteError writes a structured error body with a human-readable detail.
func WriteError(w http.ResponseWriter, status int, detail string) {
	WriteJSON(w, status, errorResponse{Detail: detail})
}

// writeServiceError maps domain errors to their HTTP status. Anything not in
// the taxonomy is a 500 and gets logged with its cause; the client only sees
// a generic message.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrConflict):
		WriteError(w, http.StatusBadRequest, "association already exists")
	case errors.Is(err, service.ErrForbidden):
		WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		WriteError(w, http.StatusUnauthorized, err.Error())
	default:
		slog.Error("internal error", "error", err)
		WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeBody parses the JSON request body into dst, answering 400 itself on
// malformed input. Returns false if the handler should stop.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
