// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/dkaerit/pokerater/auth"
	"github.com/dkaerit/pokerater/sharelink"
	"github.com/dkaerit/pokerater/storage"
)

var ErrSessionNotFound = errors.New("session not found")

// Manager keeps the open sessions in memory.
type Manager struct {
	backend storage.Backend
	catalog Catalog
	codec   *sharelink.Codec
	opts    Options

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(backend storage.Backend, catalog Catalog, codec *sharelink.Codec, opts Options) *Manager {
	return &Manager{
		backend:  backend,
		catalog:  catalog,
		codec:    codec,
		opts:     opts,
		sessions: map[string]*Session{},
	}
}

// Create opens and starts a session for a device. The share parameters
// may be empty.
func (m *Manager) Create(ctx context.Context, deviceID, ratingsParam, favoritesParam string) (*Session, error) {
	if deviceID == "" {
		return nil, storage.ErrEmptyScope
	}

	id, err := auth.GenerateSessionID()
	if err != nil {
		return nil, err
	}

	s := newSession(id, deviceID, storage.Scoped(m.backend, deviceID), m.catalog, m.codec, m.opts)
	s.Start(ctx, ratingsParam, favoritesParam)

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	slog.Info("session created", "session_id", id, "device_id", deviceID)
	return s, nil
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// End tears a session down. Durable storage is left as is.
func (m *Manager) End(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)

	slog.Info("session ended", "session_id", id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
