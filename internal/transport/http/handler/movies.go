package handler

import (
	"net/http"
	"strconv"

	"github.com/moviesir-api/internal/application/movie"
)

// MovieHandler serves the loaded movie catalog.
type MovieHandler struct {
	svc movie.Service
}

func NewMovieHandler(svc movie.Service) *MovieHandler { return &MovieHandler{svc: svc} }

func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	cursor := r.URL.Query().Get("cursor")
	movies, next, err := h.svc.List(r.Context(), limit, cursor)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, PaginatedMoviesEnvelope{Data: movies, NextCursor: next})
}
