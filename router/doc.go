// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the PokeRater API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(catalog, sessions, bundle, cfg)

# Endpoints

Health:

	GET /health

Catalog and strings:

	GET  /catalog                     - Groups, items and image status
	POST /catalog/reload              - Retry the catalog load
	POST /catalog/groups/{id}/images  - Enrich one group in the background
	GET  /dictionary                  - UI strings (?lang= or Accept-Language)

Sessions (create requires X-Device-UUID):

	POST   /sessions       - Open a session, optionally from a share link
	GET    /sessions/{id}  - Ratings, favorites and scores
	DELETE /sessions/{id}  - End a session

Ratings:

	GET /sessions/{id}/ratings         - All ratings
	GET /sessions/{id}/ratings/{item}  - One rating (404 when unrated)
	PUT /sessions/{id}/ratings/{item}  - Rate an item 0..6

Favorites:

	GET    /sessions/{id}/favorites           - Ranked favorites
	GET    /sessions/{id}/favorites/eligible  - Items rated 6 not yet added
	POST   /sessions/{id}/favorites           - Add a favorite
	POST   /sessions/{id}/favorites/reorder   - Move a favorite
	DELETE /sessions/{id}/favorites/{item}    - Remove a favorite

Derived:

	GET /sessions/{id}/scores  - Mean rating per group
	GET /sessions/{id}/share   - Share link (?page= or PUBLIC_URL)

# Handler Initialization

The router creates handler instances with dependency injection. Session
handlers share one session.Manager; the catalog is shared by everything.
*/
package router
