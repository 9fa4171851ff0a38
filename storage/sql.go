// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SQL stores device values in the local_storage table.
// Queries use $N placeholders, understood by both lib/pq and modernc sqlite.
type SQL struct {
	db *sql.DB
}

// NewSQL wraps an open database. The schema must already exist (see db.CreateSchema).
func NewSQL(db *sql.DB) *SQL {
	return &SQL{db: db}
}

func (s *SQL) Get(ctx context.Context, scope, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT payload FROM local_storage WHERE scope = $1 AND name = $2
	`, scope, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	return value, true, nil
}

// Set upserts the value. Last write wins.
func (s *SQL) Set(ctx context.Context, scope, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO local_storage (scope, name, payload, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (scope, name) DO UPDATE
		SET payload = excluded.payload, updated_at = excluded.updated_at
	`, scope, key, value, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	return nil
}

func (s *SQL) Close() error {
	return s.db.Close()
}
