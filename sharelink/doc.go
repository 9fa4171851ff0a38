// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sharelink encodes a session's ratings and favorites into a URL.

# Format

Two query parameters, each base64(JSON):

	?ratings=eyIyNSI6Nn0%3D&favorites=WyIyNSJd
	         {"25":6}                 ["25"]

The rest of the page URL (path, locale prefix, other parameters) is kept.

# Decoding

The halves decode independently. An empty parameter is absent. A
malformed one (bad base64, bad JSON, rating outside 0-6, empty or
duplicate ids, too many favorites) is reported in Result.RatingsErr or
Result.FavoritesErr and the caller falls back to durable storage for that
half only:

	res := codec.Decode(q.Get("ratings"), q.Get("favorites"))
	if res.HasRatings {
		store.Seed(ctx, res.Ratings)
	}

Decode(Encode(r, f)) returns r and f unchanged, favorites in the same order.
*/
package sharelink
