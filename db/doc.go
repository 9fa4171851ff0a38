// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the durable storage backend and creates its schema.

# Backends

OpenBackend picks a backend from the configured database type:

  - sqlite: modernc.org/sqlite, WAL mode (default)
  - postgres: lib/pq
  - badger: embedded key-value directory (DatabaseURL is the directory)

Usage:

	backend, err := db.OpenBackend(cfg.DatabaseType, cfg.DatabaseURL)

# Schema Creation

CreateSchema initializes the SQL tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - local_storage: (scope, name) -> payload, one row per device key
*/
package db
