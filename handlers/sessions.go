// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dkaerit/pokerater/auth"
	"github.com/dkaerit/pokerater/middleware"
	"github.com/dkaerit/pokerater/session"
	"github.com/dkaerit/pokerater/sharelink"
)

type SessionHandler struct {
	sessions *session.Manager
}

func NewSessionHandler(sessions *session.Manager) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// CreateSession handles POST /sessions
// Seeds from ?ratings= and ?favorites= when present, else from the device's storage
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	deviceID, err := auth.ValidateDeviceUUID(r.Header.Get(middleware.DeviceHeader))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, middleware.DeviceHeader+" header must be a UUID")
		return
	}

	q := r.URL.Query()
	s, err := h.sessions.Create(r.Context(), deviceID, q.Get(sharelink.RatingsParam), q.Get(sharelink.FavoritesParam))
	if err != nil {
		slog.Error("failed to create session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, s.Snapshot())
}

// GetSession handles GET /sessions/{id}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(w, r, h.sessions)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, s.Snapshot())
}

// EndSession handles DELETE /sessions/{id}
func (h *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.End(r.PathValue("id")); err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// lookupSession resolves the {id} path value, writing a 404 when unknown
func lookupSession(w http.ResponseWriter, r *http.Request, sessions *session.Manager) (*session.Session, bool) {
	s, err := sessions.Get(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return nil, false
	}
	return s, true
}
