package handler

import (
	"net/http"

	"github.com/Nathal25/LUMIX-BACKEND/internal/service"

	"github.com/go-chi/chi/v5"
)

type ReviewHandler struct {
	svc *service.ReviewService
}

func NewReviewHandler(svc *service.ReviewService) *ReviewHandler { return &ReviewHandler{svc: svc} }

type reviewRequest struct {
	MovieID string `json:"movieId" validate:"required"`
	Comment string `json:"comment" validate:"required,min=3,max=1000"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
}

// @Summary Post a review
// @Description One review per user and movie; a second attempt is a conflict.
// @Tags reviews
// @Accept json
// @Produce json
// @Param body body reviewRequest true "review"
// @Success 201 {object} models.Review
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reviews [post]
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rv, err := h.svc.Create(r.Context(), UserIDFromContext(r.Context()), req.MovieID, service.ReviewData{
		Comment: req.Comment,
		Rating:  req.Rating,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rv)
}

type reviewUpdateRequest struct {
	Comment string `json:"comment" validate:"required,min=3,max=1000"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
}

// @Summary Update the caller's review of a movie
// @Tags reviews
// @Accept json
// @Produce json
// @Param movieId path string true "movie id"
// @Param body body reviewUpdateRequest true "new comment and rating"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/movie/{movieId} [put]
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req reviewUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	err := h.svc.Update(r.Context(), UserIDFromContext(r.Context()), chi.URLParam(r, "movieId"), service.ReviewData{
		Comment: req.Comment,
		Rating:  req.Rating,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "review updated"})
}

// @Summary List reviews for a movie
// @Tags reviews
// @Produce json
// @Param movieId path string true "movie id"
// @Success 200 {array} models.Review
// @Failure 404 {object} map[string]string
// @Router /reviews/movie/{movieId} [get]
func (h *ReviewHandler) ListByMovie(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ListByMovie(r.Context(), chi.URLParam(r, "movieId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// @Summary List reviews written by a user
// @Tags reviews
// @Produce json
// @Param userId path string true "user id"
// @Success 200 {array} models.Review
// @Failure 404 {object} map[string]string
// @Router /reviews/user/{userId} [get]
func (h *ReviewHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ListByUser(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// @Summary Average rating for a movie
// @Description 0 when the movie has no reviews.
// @Tags reviews
// @Produce json
// @Param movieId path string true "movie id"
// @Success 200 {object} map[string]float64
// @Router /reviews/movie/{movieId}/average [get]
func (h *ReviewHandler) Average(w http.ResponseWriter, r *http.Request) {
	avg, err := h.svc.AverageRating(r.Context(), chi.URLParam(r, "movieId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"average": avg})
}

// @Summary Delete a review
// @Tags reviews
// @Produce json
// @Param id path string true "review id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "review deleted"})
}
