// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/dkaerit/pokerater/storage"
)

// Database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
	TypeBadger   = "badger"
)

// Open connects to a SQL database and verifies the connection.
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case TypePostgres:
		conn, err := sql.Open("postgres", url)
		if err != nil {
			return nil, fmt.Errorf("database connection failed: %w", err)
		}
		if err := conn.Ping(); err != nil {
			conn.Close()
			return nil, fmt.Errorf("database ping failed: %w", err)
		}
		return conn, nil

	case TypeSQLite:
		conn, err := sql.Open("sqlite", url)
		if err != nil {
			return nil, fmt.Errorf("database connection failed: %w", err)
		}
		conn.SetMaxOpenConns(4)
		conn.SetMaxIdleConns(2)
		conn.SetConnMaxLifetime(time.Hour)

		pragmas := []string{
			"PRAGMA journal_mode=WAL",
			"PRAGMA synchronous=NORMAL",
			"PRAGMA busy_timeout=5000",
		}
		for _, pragma := range pragmas {
			if _, err := conn.Exec(pragma); err != nil {
				conn.Close()
				return nil, fmt.Errorf("exec pragma %q: %w", pragma, err)
			}
		}
		return conn, nil

	default:
		return nil, fmt.Errorf("unsupported SQL database type %q", dbType)
	}
}

// OpenBackend opens the durable storage backend selected by dbType.
// SQL backends get their schema created.
func OpenBackend(dbType, url string) (storage.Backend, error) {
	if dbType == TypeBadger {
		return storage.OpenBadger(url)
	}

	conn, err := Open(dbType, url)
	if err != nil {
		return nil, err
	}

	if err := CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return storage.NewSQL(conn), nil
}
