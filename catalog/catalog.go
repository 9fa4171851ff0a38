// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dkaerit/pokerater/models"
)

var (
	ErrNotLoaded     = errors.New("catalog is not loaded")
	ErrGroupNotFound = errors.New("group not found")
)

// Loader is the upstream source of groups and their images.
type Loader interface {
	ListGroups(ctx context.Context) ([]models.Group, error)
	ResolveGroupImages(ctx context.Context, group models.Group) (models.Group, error)
}

// Catalog is the shared, read-mostly list of groups.
// It is safe for concurrent use.
type Catalog struct {
	loader Loader

	mu       sync.RWMutex
	groups   []models.Group
	index    map[int]int // group id -> position in groups
	loaded   bool
	loadErr  error
	epoch    int // bumped on every successful Load
	inFlight map[int]bool
}

func New(loader Loader) *Catalog {
	return &Catalog{
		loader:   loader,
		index:    map[int]int{},
		inFlight: map[int]bool{},
	}
}

// Load fetches the group list. On failure the previous state is kept and
// the error is remembered until the next successful attempt.
func (c *Catalog) Load(ctx context.Context) error {
	groups, err := c.loader.ListGroups(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.loadErr = err
		slog.Error("catalog load failed", "error", err)
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	c.groups = groups
	c.index = make(map[int]int, len(groups))
	for i, g := range groups {
		c.index[g.ID] = i
	}
	c.loaded = true
	c.loadErr = nil
	c.epoch++
	c.inFlight = map[int]bool{}

	slog.Info("catalog loaded", "groups", len(groups))
	return nil
}

// Ready reports whether a load has succeeded.
func (c *Catalog) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Err returns the last load error, nil once a load succeeded.
func (c *Catalog) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadErr
}

// Groups returns a deep copy of all groups in catalog order.
func (c *Catalog) Groups() []models.Group {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Group, len(c.groups))
	for i, g := range c.groups {
		out[i] = g.Clone()
	}
	return out
}

// Group returns one group by id.
func (c *Catalog) Group(id int) (models.Group, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.loaded {
		return models.Group{}, ErrNotLoaded
	}
	i, ok := c.index[id]
	if !ok {
		return models.Group{}, fmt.Errorf("%w: %d", ErrGroupNotFound, id)
	}
	return c.groups[i].Clone(), nil
}

// Items returns every item of every group, in catalog order.
func (c *Catalog) Items() []models.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var items []models.Item
	for _, g := range c.groups {
		items = append(items, g.Items...)
	}
	return items
}

// HasItem reports whether an item id belongs to the catalog.
func (c *Catalog) HasItem(itemID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, g := range c.groups {
		for _, item := range g.Items {
			if item.ID == itemID {
				return true
			}
		}
	}
	return false
}

// Enrich resolves the images of one group. Enriching a loaded group is a no-op,
// and a concurrent call for the same group returns immediately.
// Failures only affect this group.
func (c *Catalog) Enrich(ctx context.Context, groupID int) error {
	c.mu.Lock()
	if !c.loaded {
		c.mu.Unlock()
		return ErrNotLoaded
	}
	i, ok := c.index[groupID]
	if !ok {
		c.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrGroupNotFound, groupID)
	}
	if c.groups[i].ImageStatus == models.ImageLoaded || c.inFlight[groupID] {
		c.mu.Unlock()
		return nil
	}
	group := c.groups[i].Clone()
	epoch := c.epoch
	c.inFlight[groupID] = true
	c.mu.Unlock()

	enriched, err := c.loader.ResolveGroupImages(ctx, group)

	c.mu.Lock()
	defer c.mu.Unlock()

	if epoch != c.epoch {
		// The catalog was reloaded meanwhile; the response is stale
		slog.Debug("dropping stale enrichment", "group_id", groupID)
		return nil
	}
	delete(c.inFlight, groupID)

	// Membership and order are fixed: only image fields are taken over
	current := &c.groups[i]
	byID := make(map[string]models.Item, len(enriched.Items))
	for _, item := range enriched.Items {
		byID[item.ID] = item
	}
	for j := range current.Items {
		if e, ok := byID[current.Items[j].ID]; ok {
			current.Items[j].ImageRef = e.ImageRef
			current.Items[j].ImageStatus = e.ImageStatus
		}
	}

	if err != nil {
		current.ImageStatus = models.ImageFailed
		slog.Warn("group enrichment failed", "group_id", groupID, "error", err)
		return fmt.Errorf("failed to enrich group %d: %w", groupID, err)
	}

	current.ImageStatus = models.ImageLoaded
	slog.Info("group enriched", "group_id", groupID, "items", len(current.Items))
	return nil
}

// EnrichAsync starts enrichment of one group in the background.
// The result lands in the catalog whenever it arrives.
func (c *Catalog) EnrichAsync(groupID int, timeout time.Duration) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		// Errors are recorded on the group status
		_ = c.Enrich(ctx, groupID)
	}()
}

// EnrichAll enriches every group concurrently and waits for all of them.
// It returns the errors of the groups that failed.
func (c *Catalog) EnrichAll(ctx context.Context) error {
	groups := c.Groups()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, g := range groups {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := c.Enrich(ctx, g.ID); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return errors.Join(errs...)
}
