// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the PokeRater API server.

PokeRater lets a person rate every Pokémon from 0 to 6, see the mean
rating of each generation, keep a ranked list of up to six favorites
drawn from the items rated 6, and share all of it as a single link.

# Starting the Server

Configuration comes from CLI flags, environment variables or a .env file
in the working directory:

	DATABASE_URL=pokerater.db go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file, PostgreSQL DSN or Badger directory

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres or badger (default: sqlite)
  - CATALOG_URL (--catalog-url): PokeAPI base URL
  - CATALOG_LANG (--catalog-lang): Language of generation names (default: es)
  - FAVORITES_CAP (--favorites-cap): Favorites capacity (default: 6)
  - PRUNE_FAVORITES (--prune-favorites): Drop favorites rated below 6
  - PUBLIC_URL (--public-url): Page URL share links point at
  - LOG_LEVEL (--log-level), LOG_FORMAT (--log-format): text or json

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (catalog, sessions, ratings, favorites, scores)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - session: Per-device sessions tying the stores together
  - ratings, favorites, scores: Rating store, favorites list, score aggregation
  - sharelink: Share link encoding and decoding
  - catalog: PokeAPI client and the shared group catalog
  - locale: Embedded UI dictionaries
  - storage, db: Durable key-value storage over SQL or Badger
  - auth: Session IDs and device UUID validation
  - logger, cliparse: Logging and configuration

See package documentation for each component.
*/
package main
