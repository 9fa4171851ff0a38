// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dkaerit/pokerater/catalog"
	"github.com/dkaerit/pokerater/middleware"
	"github.com/dkaerit/pokerater/models"
)

// EnrichTimeout bounds one background image enrichment
const EnrichTimeout = 2 * time.Minute

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

// GetCatalog handles GET /catalog
func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	if !h.catalog.Ready() {
		msg := "Catalog is not loaded"
		if err := h.catalog.Err(); err != nil {
			msg = "Catalog failed to load"
		}
		middleware.RetryableErrorResponse(w, http.StatusServiceUnavailable, msg)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CatalogResponse{
		Ready:  true,
		Groups: h.catalog.Groups(),
	})
}

// Reload handles POST /catalog/reload
// Retries the initial load; the catalog keeps its previous state on failure
func (h *CatalogHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Load(r.Context()); err != nil {
		slog.Error("catalog reload failed", "error", err)
		middleware.RetryableErrorResponse(w, http.StatusBadGateway, "Catalog source unavailable")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CatalogResponse{
		Ready:  true,
		Groups: h.catalog.Groups(),
	})
}

// EnrichGroup handles POST /catalog/groups/{id}/images
// Starts image resolution in the background and returns immediately
func (h *CatalogHandler) EnrichGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "group id must be an integer")
		return
	}

	group, err := h.catalog.Group(groupID)
	if errors.Is(err, catalog.ErrNotLoaded) {
		middleware.RetryableErrorResponse(w, http.StatusServiceUnavailable, "Catalog is not loaded")
		return
	}
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Group not found")
		return
	}

	if group.ImageStatus != models.ImageLoaded {
		h.catalog.EnrichAsync(groupID, EnrichTimeout)
	}

	middleware.JSONResponse(w, http.StatusAccepted, group)
}
