// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dkaerit/pokerater/middleware"
	"github.com/dkaerit/pokerater/models"
	"github.com/dkaerit/pokerater/ratings"
	"github.com/dkaerit/pokerater/session"
)

type RatingsHandler struct {
	sessions *session.Manager
}

func NewRatingsHandler(sessions *session.Manager) *RatingsHandler {
	return &RatingsHandler{sessions: sessions}
}

// ListRatings handles GET /sessions/{id}/ratings
func (h *RatingsHandler) ListRatings(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(w, r, h.sessions)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, s.Ratings())
}

// GetRating handles GET /sessions/{id}/ratings/{item}
// Unrated items are 404, never 0
func (h *RatingsHandler) GetRating(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(w, r, h.sessions)
	if !ok {
		return
	}

	itemID := r.PathValue("item")
	value, rated := s.Rating(itemID)
	if !rated {
		middleware.ErrorResponse(w, http.StatusNotFound, "Item is not rated")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RatingResponse{
		ItemID: itemID,
		Rating: value,
	})
}

// SetRating handles PUT /sessions/{id}/ratings/{item}
func (h *RatingsHandler) SetRating(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(w, r, h.sessions)
	if !ok {
		return
	}

	var req models.SetRatingRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Rating == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "rating is required")
		return
	}

	itemID := r.PathValue("item")
	err := s.SetRating(r.Context(), itemID, *req.Rating)
	if errors.Is(err, ratings.ErrInvalidRating) || errors.Is(err, ratings.ErrEmptyItemID) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to set rating", "session_id", s.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to set rating")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RatingResponse{
		ItemID: itemID,
		Rating: *req.Rating,
	})
}
