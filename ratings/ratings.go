// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ratings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dkaerit/pokerater/models"
	"github.com/dkaerit/pokerater/storage"
)

var (
	ErrInvalidRating = errors.New("rating must be an integer between 0 and 6")
	ErrEmptyItemID   = errors.New("item id is required")
)

// Store holds the ratings of one session and mirrors them into durable storage.
// It is not safe for concurrent use; the owning session serializes access.
type Store struct {
	values models.Ratings
	kv     storage.Store
}

func New(kv storage.Store) *Store {
	return &Store{values: models.Ratings{}, kv: kv}
}

// Validate checks that v is inside the rating domain
func Validate(v int) error {
	if v < models.MinRating || v > models.MaxRating {
		return fmt.Errorf("%w: got %d", ErrInvalidRating, v)
	}
	return nil
}

// Get returns the rating of an item and whether it was rated at all.
func (s *Store) Get(itemID string) (int, bool) {
	v, ok := s.values[itemID]
	return v, ok
}

// Set upserts a rating. Out-of-range values are rejected and leave the map untouched.
func (s *Store) Set(ctx context.Context, itemID string, value int) error {
	if itemID == "" {
		return ErrEmptyItemID
	}
	if err := Validate(value); err != nil {
		return err
	}

	s.values[itemID] = value
	s.persist(ctx)
	return nil
}

// Seed replaces the whole map. Invalid entries are dropped.
func (s *Store) Seed(ctx context.Context, initial models.Ratings) {
	s.values = sanitize(initial)
	s.persist(ctx)
}

// Load reads the durable copy. A missing key yields an empty map.
func (s *Store) Load(ctx context.Context) (models.Ratings, error) {
	raw, ok, err := s.kv.Get(ctx, storage.RatingsKey)
	if err != nil {
		return models.Ratings{}, err
	}
	if !ok {
		return models.Ratings{}, nil
	}

	var stored models.Ratings
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return models.Ratings{}, fmt.Errorf("failed to parse stored ratings: %w", err)
	}

	return sanitize(stored), nil
}

// Snapshot returns a copy of the current ratings.
func (s *Store) Snapshot() models.Ratings {
	return s.values.Clone()
}

func (s *Store) Len() int {
	return len(s.values)
}

// persist writes the whole map. An empty map is never written so that a
// fresh session cannot erase what an earlier one stored.
func (s *Store) persist(ctx context.Context) {
	if len(s.values) == 0 {
		return
	}

	data, err := json.Marshal(s.values)
	if err != nil {
		slog.Error("failed to encode ratings", "error", err)
		return
	}

	if err := s.kv.Set(ctx, storage.RatingsKey, string(data)); err != nil {
		// Non-fatal: the session keeps working in memory
		slog.Error("failed to persist ratings", "error", err)
	}
}

func sanitize(r models.Ratings) models.Ratings {
	clean := make(models.Ratings, len(r))
	for id, v := range r {
		if id == "" || Validate(v) != nil {
			slog.Warn("dropping invalid rating", "item_id", id, "rating", v)
			continue
		}
		clean[id] = v
	}
	return clean
}
