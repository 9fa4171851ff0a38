// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dkaerit/pokerater/favorites"
	"github.com/dkaerit/pokerater/models"
	"github.com/dkaerit/pokerater/ratings"
	"github.com/dkaerit/pokerater/scores"
	"github.com/dkaerit/pokerater/sharelink"
	"github.com/dkaerit/pokerater/storage"
)

// Catalog is the read side of the shared group catalog.
type Catalog interface {
	Groups() []models.Group
	Items() []models.Item
}

// Options tune the behaviour of every session.
type Options struct {
	// FavoritesCap bounds the favorites list; 0 means the default of 6.
	FavoritesCap int
	// PruneFavorites removes an item from the favorites when its rating drops below 6.
	PruneFavorites bool
}

// Session is the state of one open app: a rating store and a favorites list
// bound to the device's durable storage. All methods are safe for concurrent use.
type Session struct {
	ID        string
	DeviceID  string
	CreatedAt time.Time

	mu        sync.Mutex
	ratings   *ratings.Store
	favorites *favorites.List
	catalog   Catalog
	codec     *sharelink.Codec
	opts      Options
}

func newSession(id, deviceID string, kv storage.Store, catalog Catalog, codec *sharelink.Codec, opts Options) *Session {
	return &Session{
		ID:        id,
		DeviceID:  deviceID,
		CreatedAt: time.Now().UTC(),
		ratings:   ratings.New(kv),
		favorites: favorites.New(kv, opts.FavoritesCap),
		catalog:   catalog,
		codec:     codec,
		opts:      opts,
	}
}

// Start seeds both halves once. A valid share parameter wins over durable
// storage; an absent or malformed one falls back to storage for that half only.
func (s *Session) Start(ctx context.Context, ratingsParam, favoritesParam string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.codec.Decode(ratingsParam, favoritesParam)

	if res.HasRatings {
		s.ratings.Seed(ctx, res.Ratings)
	} else {
		if res.RatingsErr != nil {
			slog.Warn("ignoring shared ratings", "session_id", s.ID, "error", res.RatingsErr)
		}
		stored, err := s.ratings.Load(ctx)
		if err != nil {
			slog.Warn("failed to load stored ratings", "session_id", s.ID, "error", err)
		}
		s.ratings.Seed(ctx, stored)
	}

	if res.HasFavorites {
		s.favorites.Seed(ctx, res.Favorites)
	} else {
		if res.FavoritesErr != nil {
			slog.Warn("ignoring shared favorites", "session_id", s.ID, "error", res.FavoritesErr)
		}
		stored, err := s.favorites.Load(ctx)
		if err != nil {
			slog.Warn("failed to load stored favorites", "session_id", s.ID, "error", err)
		}
		s.favorites.Seed(ctx, stored)
	}

	slog.Debug("session started",
		"session_id", s.ID,
		"ratings", s.ratings.Len(),
		"favorites", s.favorites.Len(),
		"from_link", res.HasRatings || res.HasFavorites)
}

// Rating returns the rating of one item and whether it is rated.
func (s *Session) Rating(itemID string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ratings.Get(itemID)
}

// SetRating stores a rating. With PruneFavorites, a value below 6 also
// removes the item from the favorites.
func (s *Session) SetRating(ctx context.Context, itemID string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ratings.Set(ctx, itemID, value); err != nil {
		return err
	}

	if s.opts.PruneFavorites && value < models.MaxRating {
		if s.favorites.Remove(ctx, itemID) {
			slog.Debug("pruned favorite", "session_id", s.ID, "item_id", itemID, "rating", value)
		}
	}
	return nil
}

func (s *Session) Ratings() models.Ratings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ratings.Snapshot()
}

// Scores computes the per-group means against the current catalog.
func (s *Session) Scores() []models.Score {
	s.mu.Lock()
	r := s.ratings.Snapshot()
	s.mu.Unlock()

	return scores.Compute(s.catalog.Groups(), r)
}

// Favorites returns the favorites resolved against the catalog, in stored order.
func (s *Session) Favorites() []models.Item {
	items := s.catalog.Items()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.Items(items)
}

func (s *Session) FavoriteIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.IDs()
}

func (s *Session) FavoritesCap() int {
	return s.favorites.Cap()
}

// EligiblePool lists the items rated 6 that are not favorites yet.
func (s *Session) EligiblePool() []models.Item {
	items := s.catalog.Items()

	s.mu.Lock()
	defer s.mu.Unlock()
	return favorites.EligiblePool(s.ratings.Snapshot(), items, s.favorites.IDs())
}

// AddFavorite appends an item rated 6 that belongs to the catalog.
func (s *Session) AddFavorite(ctx context.Context, itemID string) error {
	items := s.catalog.Items()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.favorites.Contains(itemID) {
		return favorites.ErrDuplicate
	}
	if v, ok := s.ratings.Get(itemID); !ok || v != models.MaxRating {
		return fmt.Errorf("%w: item %s", favorites.ErrNotEligible, itemID)
	}
	if !containsItem(items, itemID) {
		return fmt.Errorf("%w: item %s is not in the catalog", favorites.ErrNotEligible, itemID)
	}

	return s.favorites.Add(ctx, itemID)
}

// RemoveFavorite removes an item and reports whether it was a favorite.
func (s *Session) RemoveFavorite(ctx context.Context, itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.Remove(ctx, itemID)
}

func (s *Session) ReorderFavorites(ctx context.Context, from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.Reorder(ctx, from, to)
}

// ShareLink encodes the current state onto pageURL.
func (s *Session) ShareLink(pageURL string) (string, error) {
	s.mu.Lock()
	r, f := s.ratings.Snapshot(), s.favorites.IDs()
	s.mu.Unlock()

	return s.codec.Encode(pageURL, r, f)
}

// Snapshot returns the full state of the session.
func (s *Session) Snapshot() models.SessionResponse {
	s.mu.Lock()
	r, f := s.ratings.Snapshot(), s.favorites.IDs()
	s.mu.Unlock()

	return models.SessionResponse{
		SessionID: s.ID,
		DeviceID:  s.DeviceID,
		Ratings:   r,
		Favorites: f,
		Scores:    scores.Compute(s.catalog.Groups(), r),
	}
}

func containsItem(items []models.Item, itemID string) bool {
	for _, item := range items {
		if item.ID == itemID {
			return true
		}
	}
	return false
}
