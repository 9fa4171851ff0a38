// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package logger configures the process-wide slog logger.

	logger.Setup(logger.Config{
		Format: cfg.LogFormat,              // "text" or "json"
		Level:  logger.ParseLevel(cfg.LogLevel),
	})

Packages log through the slog default (slog.Info, slog.Error, ...), so
Setup must run before anything else logs.
*/
package logger
