// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package favorites

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
	ErrFull            = errors.New("favorites list is full")
	ErrDuplicate       = errors.New("item is already a favorite")
	ErrNotEligible     = errors.New("only items rated 6 can be favorites")
	ErrIndexOutOfRange = errors.New("favorite index out of range")
)

// List is the ordered, capacity-bounded favorites of one session.
// It is not safe for concurrent use; the owning session serializes access.
type List struct {
	ids      []string
	capacity int
	kv       storage.Store
	seeded   bool
}

// New creates an empty list. A non-positive capacity falls back to the default.
func New(kv storage.Store, capacity int) *List {
	if capacity <= 0 {
		capacity = models.DefaultFavoritesCap
	}
	return &List{ids: []string{}, capacity: capacity, kv: kv}
}

func (l *List) Cap() int { return l.capacity }

func (l *List) Len() int { return len(l.ids) }

// IDs returns a copy of the stored order.
func (l *List) IDs() []string {
	out := make([]string, len(l.ids))
	copy(out, l.ids)
	return out
}

func (l *List) Contains(itemID string) bool {
	return l.indexOf(itemID) >= 0
}

// Items resolves the stored ids against the catalog.
// Ids without a catalog entry are skipped here but stay stored.
func (l *List) Items(catalog []models.Item) []models.Item {
	byID := make(map[string]models.Item, len(catalog))
	for _, item := range catalog {
		byID[item.ID] = item
	}

	items := make([]models.Item, 0, len(l.ids))
	for _, id := range l.ids {
		if item, ok := byID[id]; ok {
			items = append(items, item)
		}
	}
	return items
}

// Add appends an item. The list is unchanged when it is full or already holds the item.
func (l *List) Add(ctx context.Context, itemID string) error {
	if l.Contains(itemID) {
		return ErrDuplicate
	}
	if len(l.ids) >= l.capacity {
		return ErrFull
	}

	l.ids = append(l.ids, itemID)
	l.persist(ctx)
	return nil
}

// Remove deletes an item and reports whether it was present.
func (l *List) Remove(ctx context.Context, itemID string) bool {
	i := l.indexOf(itemID)
	if i < 0 {
		return false
	}

	l.ids = append(l.ids[:i], l.ids[i+1:]...)
	l.persist(ctx)
	return true
}

// Reorder moves the entry at from to position to, shifting the entries in between.
func (l *List) Reorder(ctx context.Context, from, to int) error {
	n := len(l.ids)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: from=%d to=%d len=%d", ErrIndexOutOfRange, from, to, n)
	}
	if from == to {
		return nil
	}

	moved := l.ids[from]
	rest := append(l.ids[:from:from], l.ids[from+1:]...)

	reordered := make([]string, 0, n)
	reordered = append(reordered, rest[:to]...)
	reordered = append(reordered, moved)
	reordered = append(reordered, rest[to:]...)

	l.ids = reordered
	l.persist(ctx)
	return nil
}

// Seed replaces the list. Duplicates and entries beyond capacity are dropped.
// After Seed every mutation is written, including one that empties the list.
func (l *List) Seed(ctx context.Context, ids []string) {
	l.ids = normalize(ids, l.capacity)
	l.persist(ctx)
	l.seeded = true
}

// Load reads the durable copy. A missing key yields an empty list.
func (l *List) Load(ctx context.Context) ([]string, error) {
	raw, ok, err := l.kv.Get(ctx, storage.FavoritesKey)
	if err != nil {
		return []string{}, err
	}
	if !ok {
		return []string{}, nil
	}

	var stored []string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return []string{}, fmt.Errorf("failed to parse stored favorites: %w", err)
	}

	return normalize(stored, l.capacity), nil
}

func (l *List) indexOf(itemID string) int {
	for i, id := range l.ids {
		if id == itemID {
			return i
		}
	}
	return -1
}

// persist writes the list. An empty list is skipped until Seed has run,
// so an unseeded list cannot clobber one saved by an earlier session.
func (l *List) persist(ctx context.Context) {
	if len(l.ids) == 0 && !l.seeded {
		return
	}

	data, err := json.Marshal(l.ids)
	if err != nil {
		slog.Error("failed to encode favorites", "error", err)
		return
	}

	if err := l.kv.Set(ctx, storage.FavoritesKey, string(data)); err != nil {
		slog.Error("failed to persist favorites", "error", err)
	}
}

func normalize(ids []string, capacity int) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, min(len(ids), capacity))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		if len(out) == capacity {
			slog.Warn("dropping favorites beyond capacity", "capacity", capacity)
			break
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// EligiblePool returns the catalog items rated 6 that are not favorites yet, in catalog order.
func EligiblePool(r models.Ratings, catalog []models.Item, current []string) []models.Item {
	taken := make(map[string]bool, len(current))
	for _, id := range current {
		taken[id] = true
	}

	pool := []models.Item{}
	for _, item := range catalog {
		if v, rated := r[item.ID]; rated && v == models.MaxRating && !taken[item.ID] {
			pool = append(pool, item)
		}
	}
	return pool
}
