// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session ties the rating store, the favorites list and the catalog
together for one open app.

# Lifecycle

A session is created empty, seeded once, mutated many times and torn down:

	m := session.NewManager(backend, catalog, sharelink.NewCodec(6), session.Options{})
	s, err := m.Create(ctx, deviceID, q.Get("ratings"), q.Get("favorites"))
	s.SetRating(ctx, "25", 6)
	s.AddFavorite(ctx, "25")
	link, err := s.ShareLink("https://example.com/pokerater/")
	m.End(s.ID)

Seeding is decided per half. A valid share parameter takes precedence;
otherwise the half is read from the device's durable storage. Malformed
parameters are logged and ignored.

# Favorites and ratings

Only items rated 6 that belong to the catalog can be added to the
favorites. Lowering the rating of a favorite keeps it in the list unless
Options.PruneFavorites is set.

# Concurrency

Each session serializes its own mutations. Sessions of the same device
share one storage scope and the last write wins.
*/
package session
