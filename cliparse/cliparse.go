package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/dkaerit/pokerater/catalog"
	"github.com/dkaerit/pokerater/db"
	"github.com/dkaerit/pokerater/logger"
	"github.com/dkaerit/pokerater/models"
)

const DefaultPort = 3318

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	CatalogURL     string
	CatalogLang    string
	FavoritesCap   int
	PruneFavorites bool
	PublicURL      string
	LogLevel       string
	LogFormat      string
}

// LoadDotEnv loads variables from an env file. Variables that are already
// set win, and a missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("pokerater", flag.ContinueOnError)

	// Network and storage
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite file, postgres DSN or badger directory)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or badger)")

	// Catalog
	fs.StringVar(&cfg.CatalogURL, "catalog-url", "", "PokeAPI base URL")
	fs.StringVar(&cfg.CatalogLang, "catalog-lang", "", "Language of group names")

	// Sessions
	fs.IntVar(&cfg.FavoritesCap, "favorites-cap", 0, "Maximum number of favorites")
	fs.BoolVar(&cfg.PruneFavorites, "prune-favorites", false, "Remove favorites whose rating drops below 6")
	fs.StringVar(&cfg.PublicURL, "public-url", "", "Page URL used for share links")

	// Logging
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "Log format (text or json)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = envOr("DATABASE_TYPE", db.TypeSQLite)
	}
	switch cfg.DatabaseType {
	case db.TypeSQLite, db.TypePostgres, db.TypeBadger:
	default:
		return Config{}, fmt.Errorf("unsupported database type %q (sqlite, postgres or badger)", cfg.DatabaseType)
	}

	if cfg.CatalogURL == "" {
		cfg.CatalogURL = envOr("CATALOG_URL", catalog.DefaultBaseURL)
	}
	if cfg.CatalogLang == "" {
		cfg.CatalogLang = envOr("CATALOG_LANG", "es")
	}

	if cfg.FavoritesCap == 0 {
		if capStr := os.Getenv("FAVORITES_CAP"); capStr != "" {
			n, err := strconv.Atoi(capStr)
			if err != nil {
				return Config{}, errors.New("invalid FAVORITES_CAP env variable")
			}
			cfg.FavoritesCap = n
		} else {
			cfg.FavoritesCap = models.DefaultFavoritesCap
		}
	}
	if cfg.FavoritesCap <= 0 {
		return Config{}, fmt.Errorf("favorites cap must be positive, got %d", cfg.FavoritesCap)
	}

	if !set["prune-favorites"] {
		if v := os.Getenv("PRUNE_FAVORITES"); v != "" {
			prune, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, errors.New("invalid PRUNE_FAVORITES env variable")
			}
			cfg.PruneFavorites = prune
		}
	}

	if cfg.PublicURL == "" {
		cfg.PublicURL = envOr("PUBLIC_URL", fmt.Sprintf("http://localhost:%d/", cfg.Port))
	}
	if u, err := url.Parse(cfg.PublicURL); err != nil || u.Scheme == "" || u.Host == "" {
		return Config{}, fmt.Errorf("invalid public URL %q", cfg.PublicURL)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = envOr("LOG_LEVEL", "info")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = envOr("LOG_FORMAT", logger.FormatText)
	}
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != logger.FormatText && cfg.LogFormat != logger.FormatJSON {
		return Config{}, fmt.Errorf("unsupported log format %q (text or json)", cfg.LogFormat)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
