// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"errors"
	"sync"
)

// Fixed keys of the durable device storage
const (
	RatingsKey   = "pokeRaterRatings"
	FavoritesKey = "pokeRaterFavorites"
)

var ErrEmptyScope = errors.New("storage scope is required")

// Store is the string-valued key-value storage of a single device.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Backend holds the storage of every device, partitioned by scope.
type Backend interface {
	Get(ctx context.Context, scope, key string) (string, bool, error)
	Set(ctx context.Context, scope, key, value string) error
	Close() error
}

// Scoped binds a backend to one device scope
func Scoped(b Backend, scope string) Store {
	return &scopedStore{backend: b, scope: scope}
}

type scopedStore struct {
	backend Backend
	scope   string
}

func (s *scopedStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.scope == "" {
		return "", false, ErrEmptyScope
	}
	return s.backend.Get(ctx, s.scope, key)
}

func (s *scopedStore) Set(ctx context.Context, key, value string) error {
	if s.scope == "" {
		return ErrEmptyScope
	}
	return s.backend.Set(ctx, s.scope, key, value)
}

// Memory is an in-process Backend, used in tests and for throwaway servers.
type Memory struct {
	mu     sync.RWMutex
	values map[string]map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]map[string]string)}
}

func (m *Memory) Get(_ context.Context, scope, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[scope][key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, scope, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.values[scope] == nil {
		m.values[scope] = make(map[string]string)
	}
	m.values[scope][key] = value
	return nil
}

func (m *Memory) Close() error { return nil }
