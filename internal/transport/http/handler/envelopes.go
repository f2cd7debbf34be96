package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/moviesir-api/internal/domain"
)

// Envelope is the uniform stage response: success flag, human-readable
// message and optional stage data.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// PaginatedMoviesEnvelope wraps paginated movie list responses.
type PaginatedMoviesEnvelope struct {
	Data       []domain.Movie `json:"data"`
	NextCursor string         `json:"next_cursor,omitempty"`
	Error      string         `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, Envelope{Success: false, Error: msg})
}

// writeServiceError maps domain error classes onto HTTP statuses. Validation
// and not-yet-issued failures are the client's to fix (400), conflicts answer
// 409, collaborator failures answer 502.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrBadRequest), errors.Is(err, domain.ErrNotIssued):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDependency):
		writeError(w, http.StatusBadGateway, "a downstream dependency failed")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
