package handler

import (
	"net/http"

	"github.com/Nathal25/LUMIX-BACKEND/internal/service"

	"github.com/go-chi/chi/v5"
)

type FavoriteHandler struct {
	svc *service.FavoriteService
}

func NewFavoriteHandler(svc *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{svc: svc}
}

type favoriteRequest struct {
	MovieID string `json:"movieId" validate:"required"`
}

// @Summary Add a movie to the caller's favorites
// @Tags favorites
// @Accept json
// @Produce json
// @Param body body favoriteRequest true "movie to favorite"
// @Success 201 {object} models.Favorite
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /favorites [post]
func (h *FavoriteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req favoriteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	f, err := h.svc.Add(r.Context(), UserIDFromContext(r.Context()), req.MovieID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, f)
}

// @Summary List a user's favorites with movie details
// @Tags favorites
// @Produce json
// @Param userId path string true "user id"
// @Success 200 {array} models.FavoriteWithMovie
// @Failure 400 {object} map[string]string
// @Router /favorites/user/{userId} [get]
func (h *FavoriteHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ListByUser(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// @Summary Remove a favorite
// @Tags favorites
// @Produce json
// @Param id path string true "favorite id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /favorites/{id} [delete]
func (h *FavoriteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "favorite removed"})
}
