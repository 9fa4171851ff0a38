package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/dkaerit/pokerater/catalog"
	"github.com/dkaerit/pokerater/cliparse"
	"github.com/dkaerit/pokerater/db"
	"github.com/dkaerit/pokerater/locale"
	"github.com/dkaerit/pokerater/logger"
	"github.com/dkaerit/pokerater/middleware"
	"github.com/dkaerit/pokerater/router"
	"github.com/dkaerit/pokerater/session"
	"github.com/dkaerit/pokerater/sharelink"
)

const catalogLoadTimeout = 30 * time.Second

func main() {
	var err error

	if err := cliparse.LoadDotEnv(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	logger.Setup(logger.Config{
		Format: cfg.LogFormat,
		Level:  logger.ParseLevel(cfg.LogLevel),
	})

	// Open durable storage (schema is created for SQL backends)
	backend, err := db.OpenBackend(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("storage open failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer backend.Close()
	slog.Info("Storage ready", "type", cfg.DatabaseType)

	// UI strings are embedded; a broken dictionary is a build problem
	bundle, err := locale.Load()
	if err != nil {
		slog.Error("dictionary load failed", "error", err)
		os.Exit(1)
	}

	// Load the catalog. Failure is not fatal: clients see a retryable
	// error and can trigger POST /catalog/reload.
	cat := catalog.New(catalog.NewPokeAPI(cfg.CatalogURL, cfg.CatalogLang))
	ctx, cancel := context.WithTimeout(context.Background(), catalogLoadTimeout)
	err = cat.Load(ctx)
	cancel()
	if err != nil {
		slog.Error("catalog load failed", "url", cfg.CatalogURL, "error", err)
	} else {
		slog.Info("Catalog ready", "groups", len(cat.Groups()))
		go func() {
			if err := cat.EnrichAll(context.Background()); err != nil {
				slog.Warn("some groups have no images", "error", err)
			}
		}()
	}

	sessions := session.NewManager(backend, cat, sharelink.NewCodec(cfg.FavoritesCap), session.Options{
		FavoritesCap:   cfg.FavoritesCap,
		PruneFavorites: cfg.PruneFavorites,
	})

	// Create router
	mux := router.NewRouter(cat, sessions, bundle, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
