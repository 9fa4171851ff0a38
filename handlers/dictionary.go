// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dkaerit/pokerater/locale"
	"github.com/dkaerit/pokerater/middleware"
)

type DictionaryHandler struct {
	bundle *locale.Bundle
}

func NewDictionaryHandler(bundle *locale.Bundle) *DictionaryHandler {
	return &DictionaryHandler{bundle: bundle}
}

// GetDictionary handles GET /dictionary
// ?lang= wins over Accept-Language; both fall back to the default locale
func (h *DictionaryHandler) GetDictionary(w http.ResponseWriter, r *http.Request) {
	requested := r.URL.Query().Get("lang")
	if requested == "" {
		requested = r.Header.Get("Accept-Language")
	}

	loc := h.bundle.Match(requested)
	dict, err := h.bundle.Lookup(loc)
	if err != nil {
		slog.Error("matched locale has no dictionary", "locale", loc, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Dictionary unavailable")
		return
	}

	w.Header().Set("Content-Language", loc)
	middleware.JSONResponse(w, http.StatusOK, dict)
}
