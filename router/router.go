// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/dkaerit/pokerater/catalog"
	"github.com/dkaerit/pokerater/cliparse"
	"github.com/dkaerit/pokerater/handlers"
	"github.com/dkaerit/pokerater/locale"
	"github.com/dkaerit/pokerater/middleware"
	"github.com/dkaerit/pokerater/session"
)

func NewRouter(cat *catalog.Catalog, sessions *session.Manager, bundle *locale.Bundle, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(cat)
	dictionaryHandler := handlers.NewDictionaryHandler(bundle)
	sessionHandler := handlers.NewSessionHandler(sessions)
	ratingsHandler := handlers.NewRatingsHandler(sessions)
	favoritesHandler := handlers.NewFavoritesHandler(sessions)
	scoresHandler := handlers.NewScoresHandler(sessions, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Catalog (shared by all sessions)
	mux.HandleFunc("GET /catalog", middleware.WithLogging(catalogHandler.GetCatalog))
	mux.HandleFunc("POST /catalog/reload", middleware.WithLogging(catalogHandler.Reload))
	mux.HandleFunc("POST /catalog/groups/{id}/images", middleware.WithLogging(catalogHandler.EnrichGroup))

	// UI strings
	mux.HandleFunc("GET /dictionary", middleware.WithLogging(dictionaryHandler.GetDictionary))

	// Session lifecycle (requires X-Device-UUID on create)
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.CreateSession))
	mux.HandleFunc("GET /sessions/{id}", middleware.WithLogging(sessionHandler.GetSession))
	mux.HandleFunc("DELETE /sessions/{id}", middleware.WithLogging(sessionHandler.EndSession))

	// Ratings
	mux.HandleFunc("GET /sessions/{id}/ratings", middleware.WithLogging(ratingsHandler.ListRatings))
	mux.HandleFunc("GET /sessions/{id}/ratings/{item}", middleware.WithLogging(ratingsHandler.GetRating))
	mux.HandleFunc("PUT /sessions/{id}/ratings/{item}", middleware.WithLogging(ratingsHandler.SetRating))

	// Favorites
	mux.HandleFunc("GET /sessions/{id}/favorites", middleware.WithLogging(favoritesHandler.ListFavorites))
	mux.HandleFunc("GET /sessions/{id}/favorites/eligible", middleware.WithLogging(favoritesHandler.ListEligible))
	mux.HandleFunc("POST /sessions/{id}/favorites", middleware.WithLogging(favoritesHandler.AddFavorite))
	mux.HandleFunc("POST /sessions/{id}/favorites/reorder", middleware.WithLogging(favoritesHandler.ReorderFavorites))
	mux.HandleFunc("DELETE /sessions/{id}/favorites/{item}", middleware.WithLogging(favoritesHandler.RemoveFavorite))

	// Derived views
	mux.HandleFunc("GET /sessions/{id}/scores", middleware.WithLogging(scoresHandler.GetScores))
	mux.HandleFunc("GET /sessions/{id}/share", middleware.WithLogging(scoresHandler.GetShareLink))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pokerater API v1"))
	})

	return mux
}
