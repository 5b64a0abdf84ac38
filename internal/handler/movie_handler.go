package handler

import (
	"net/http"
	"strconv"

	"github.com/Nathal25/LUMIX-BACKEND/internal/models"
	"github.com/Nathal25/LUMIX-BACKEND/internal/service"

	"github.com/go-chi/chi/v5"
)

type MovieHandler struct {
	svc *service.MovieService
}

func NewMovieHandler(svc *service.MovieService) *MovieHandler { return &MovieHandler{svc: svc} }

// @Summary List catalog movies (paginated)
// @Tags movies
// @Produce json
// @Param q query string false "title search"
// @Param limit query int false "limit (default 20)"
// @Param offset query int false "offset"
// @Success 200 {array} models.Movie
// @Router /movies [get]
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	movies, err := h.svc.List(r.Context(), q, limit, offset)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	writeJSON(w, http.StatusOK, movies)
}

// @Summary Get a movie
// @Tags movies
// @Produce json
// @Param id path string true "movie id"
// @Success 200 {object} models.Movie
// @Failure 404 {object} map[string]string
// @Router /movies/{id} [get]
func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

type syncRequest struct {
	Query   string `json:"query"`
	PerPage int    `json:"perPage"`
}

// @Summary Ingest movies from the video provider
// @Description Fetches provider videos (search when query is set, popular otherwise) and inserts entries not yet in the catalog.
// @Tags movies
// @Accept json
// @Produce json
// @Param body body syncRequest true "sync parameters"
// @Success 200 {object} map[string]int
// @Router /movies/sync [post]
func (h *MovieHandler) Sync(w http.ResponseWriter, r *http.Request) {
	var req syncRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	var added int
	var err error
	if req.Query != "" {
		added, err = h.svc.SyncSearch(r.Context(), req.Query, req.PerPage)
	} else {
		added, err = h.svc.SyncPopular(r.Context(), req.PerPage)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"added": added})
}
