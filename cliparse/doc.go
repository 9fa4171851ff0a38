// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags and Environment Variables

Every flag falls back to an environment variable, then to a default:

	-p                PORT             3318
	-d                DATABASE_URL     (required)
	-t                DATABASE_TYPE    sqlite (sqlite, postgres, badger)
	-catalog-url      CATALOG_URL      https://pokeapi.co/api/v2
	-catalog-lang     CATALOG_LANG     es
	-favorites-cap    FAVORITES_CAP    6
	-prune-favorites  PRUNE_FAVORITES  false
	-public-url       PUBLIC_URL       http://localhost:<port>/
	-log-level        LOG_LEVEL        info
	-log-format       LOG_FORMAT       text (text, json)

CLI flags take precedence over environment variables.

# .env Files

LoadDotEnv reads a .env file into the environment before parsing.
Variables that are already set are not overridden:

	if err := cliparse.LoadDotEnv(".env"); err != nil {
		slog.Error("Failed to load .env", "error", err)
	}

# Validation

ParseFlags returns an error when DATABASE_URL is missing, the database
type or log format is unknown, the favorites cap is not positive, or the
public URL is not absolute.
*/
package cliparse
