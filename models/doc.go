// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Item: a rateable entity (id, name, image reference, image status)
  - Group: an ordered collection of items (a generation)
  - Ratings: item_id -> rating (0-6), absent key means unrated
  - Score: per-group average with progress and colour band
  - NullMean: an average that is null when nothing was rated

# Request Types

  - SetRatingRequest: rating
  - AddFavoriteRequest: item_id
  - ReorderFavoritesRequest: from, to

# Response Types

  - CatalogResponse: ready, groups
  - SessionResponse: session_id, device_id, ratings, favorites, scores
  - RatingResponse: item_id, rating
  - FavoritesResponse: favorites, ids, capacity
  - EligibleResponse: items
  - ShareLinkResponse: url
  - ErrorResponse: error, message, retry

# Constants

Rating bounds:

	MinRating = 0
	MaxRating = 6

Image status:

	ImagePending = "pending"
	ImageLoaded  = "loaded"
	ImageFailed  = "failed"

Score bands:

	BandLow  = "low"  // mean < 2
	BandMid  = "mid"  // mean < 4
	BandHigh = "high" // mean >= 4
*/
package models
