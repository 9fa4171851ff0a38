// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// Badger stores device values in an embedded badger database under "scope/key".
type Badger struct {
	db *badger.DB
}

// OpenBadger opens (or creates) a badger directory at path.
// An empty path opens an in-memory database.
func OpenBadger(path string) (*Badger, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil
	opts.SyncWrites = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	return &Badger{db: db}, nil
}

func badgerKey(scope, key string) []byte {
	return []byte(scope + "/" + key)
}

func (b *Badger) Get(_ context.Context, scope, key string) (string, bool, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerKey(scope, key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	return string(value), true, nil
}

func (b *Badger) Set(_ context.Context, scope, key, value string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerKey(scope, key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	return nil
}

func (b *Badger) Close() error {
	return b.db.Close()
}
