// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dkaerit/pokerater/cliparse"
	"github.com/dkaerit/pokerater/middleware"
	"github.com/dkaerit/pokerater/models"
	"github.com/dkaerit/pokerater/session"
	"github.com/dkaerit/pokerater/sharelink"
)

type ScoresHandler struct {
	sessions *session.Manager
	cfg      cliparse.Config
}

func NewScoresHandler(sessions *session.Manager, cfg cliparse.Config) *ScoresHandler {
	return &ScoresHandler{sessions: sessions, cfg: cfg}
}

// GetScores handles GET /sessions/{id}/scores
// One entry per group in catalog order; groups without ratings have a null mean
func (h *ScoresHandler) GetScores(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(w, r, h.sessions)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, s.Scores())
}

// GetShareLink handles GET /sessions/{id}/share
// Encodes onto ?page= when given, else onto the configured public URL
func (h *ScoresHandler) GetShareLink(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(w, r, h.sessions)
	if !ok {
		return
	}

	page := r.URL.Query().Get("page")
	if page == "" {
		page = h.cfg.PublicURL
	}

	link, err := s.ShareLink(page)
	if errors.Is(err, sharelink.ErrInvalidPageURL) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "page must be a valid URL")
		return
	}
	if err != nil {
		slog.Error("failed to build share link", "session_id", s.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to build share link")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ShareLinkResponse{URL: link})
}
