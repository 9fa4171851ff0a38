// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package storage provides the durable local storage of a device.

Every device (identified by the X-Device-UUID header) gets its own
string-valued key-value namespace. Two keys are used:

	pokeRaterRatings   → JSON object item_id -> rating
	pokeRaterFavorites → JSON array of item ids

# Backends

  - SQL: local_storage table on PostgreSQL (lib/pq) or SQLite (modernc)
  - Badger: embedded key-value directory (dgraph-io/badger)
  - Memory: in-process map

Bind a backend to a device with Scoped:

	kv := storage.Scoped(backend, deviceID)
	raw, ok, err := kv.Get(ctx, storage.RatingsKey)

Values are not versioned. Writes are last-write-wins.
*/
package storage
