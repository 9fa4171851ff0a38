// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the PokeRater API.

# Handler Types

Each handler is a struct holding its dependencies:

  - CatalogHandler: Catalog listing, reload and image enrichment
  - DictionaryHandler: Localized UI strings
  - SessionHandler: Session lifecycle (create, get, end)
  - RatingsHandler: Rating store of a session
  - FavoritesHandler: Ranked favorites list of a session
  - ScoresHandler: Per-group scores and share links

Handlers are created via constructor functions:

	ratingsHandler := handlers.NewRatingsHandler(sessions)

# Sessions

A session is opened per device. The device is identified by the
X-Device-UUID header, and its saved ratings and favorites are restored:

	POST   /sessions       → CreateSession (201, full snapshot)
	GET    /sessions/{id}  → GetSession
	DELETE /sessions/{id}  → EndSession

Opening a share link forwards its parameters:

	POST /sessions?ratings=...&favorites=...

Each half of a valid link replaces the device's saved state. A malformed
half is ignored.

# Ratings and Favorites

	PUT  /sessions/{id}/ratings/{item}     → SetRating (0..6, else 400)
	POST /sessions/{id}/favorites          → AddFavorite (409 when full,
	                                         duplicate or not rated 6)
	POST /sessions/{id}/favorites/reorder  → ReorderFavorites (400 out of range)

# Catalog

GET /catalog answers 503 with "retry": true until the catalog is loaded.
POST /catalog/groups/{id}/images starts image enrichment and answers 202;
poll GET /catalog for the group's image_status.
*/
package handlers
