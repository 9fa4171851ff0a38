// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ratings implements the rating store of a session.

A rating is an integer from 0 to 6. A missing key means the item was never
rated; it is never defaulted to 0.

	store := ratings.New(storage.Scoped(backend, deviceID))
	store.Seed(ctx, initial)
	err := store.Set(ctx, "25", 6)
	v, ok := store.Get("25")

Set rejects values outside [0, 6] with ErrInvalidRating and leaves the map
unchanged. Every successful mutation writes the whole map to the
pokeRaterRatings key, unless the map is empty. Storage failures are logged
and do not fail the mutation.
*/
package ratings
