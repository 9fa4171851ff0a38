// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dkaerit/pokerater/favorites"
	"github.com/dkaerit/pokerater/middleware"
	"github.com/dkaerit/pokerater/models"
	"github.com/dkaerit/pokerater/session"
)

type FavoritesHandler struct {
	sessions *session.Manager
}

func NewFavoritesHandler(sessions *session.Manager) *FavoritesHandler {
	return &FavoritesHandler{sessions: sessions}
}

// ListFavorites handles GET /sessions/{id}/favorites
func (h *FavoritesHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(w, r, h.sessions)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, favoritesResponse(s))
}

// ListEligible handles GET /sessions/{id}/favorites/eligible
func (h *FavoritesHandler) ListEligible(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(w, r, h.sessions)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.EligibleResponse{
		Items: s.EligiblePool(),
	})
}

// AddFavorite handles POST /sessions/{id}/favorites
func (h *FavoritesHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(w, r, h.sessions)
	if !ok {
		return
	}

	var req models.AddFavoriteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ItemID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "item_id is required")
		return
	}

	err := s.AddFavorite(r.Context(), req.ItemID)
	switch {
	case errors.Is(err, favorites.ErrFull),
		errors.Is(err, favorites.ErrDuplicate),
		errors.Is(err, favorites.ErrNotEligible):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		slog.Error("failed to add favorite", "session_id", s.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add favorite")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, favoritesResponse(s))
}

// RemoveFavorite handles DELETE /sessions/{id}/favorites/{item}
// Removing an item that is not a favorite is a no-op
func (h *FavoritesHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(w, r, h.sessions)
	if !ok {
		return
	}

	s.RemoveFavorite(r.Context(), r.PathValue("item"))

	middleware.JSONResponse(w, http.StatusOK, favoritesResponse(s))
}

// ReorderFavorites handles POST /sessions/{id}/favorites/reorder
func (h *FavoritesHandler) ReorderFavorites(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(w, r, h.sessions)
	if !ok {
		return
	}

	var req models.ReorderFavoritesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.From == nil || req.To == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "from and to are required")
		return
	}

	if err := s.ReorderFavorites(r.Context(), *req.From, *req.To); err != nil {
		if errors.Is(err, favorites.ErrIndexOutOfRange) {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to reorder favorites", "session_id", s.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reorder favorites")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, favoritesResponse(s))
}

func favoritesResponse(s *session.Session) models.FavoritesResponse {
	return models.FavoritesResponse{
		Favorites: s.Favorites(),
		IDs:       s.FavoriteIDs(),
		Capacity:  s.FavoritesCap(),
	}
}
