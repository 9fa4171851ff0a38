// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

var configEnv = []string{
	"PORT", "DATABASE_URL", "DATABASE_TYPE", "CATALOG_URL", "CATALOG_LANG",
	"FAVORITES_CAP", "PRUNE_FAVORITES", "PUBLIC_URL", "LOG_LEVEL", "LOG_FORMAT",
}

// clearEnv blanks every config variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.CatalogURL != "https://pokeapi.co/api/v2" {
		t.Errorf("unexpected catalog URL %q", cfg.CatalogURL)
	}
	if cfg.CatalogLang != "es" {
		t.Errorf("expected catalog lang es, got %q", cfg.CatalogLang)
	}
	if cfg.FavoritesCap != 6 {
		t.Errorf("expected favorites cap 6, got %d", cfg.FavoritesCap)
	}
	if cfg.PruneFavorites {
		t.Error("favorites must not be pruned by default")
	}
	if cfg.PublicURL != "http://localhost:3318/" {
		t.Errorf("unexpected public URL %q", cfg.PublicURL)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("unexpected log config %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("CATALOG_LANG", "en")
	t.Setenv("FAVORITES_CAP", "10")
	t.Setenv("PRUNE_FAVORITES", "true")
	t.Setenv("PUBLIC_URL", "https://example.com/pokerater/")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %q", cfg.DatabaseType)
	}
	if cfg.CatalogLang != "en" {
		t.Errorf("expected en, got %q", cfg.CatalogLang)
	}
	if cfg.FavoritesCap != 10 {
		t.Errorf("expected cap 10, got %d", cfg.FavoritesCap)
	}
	if !cfg.PruneFavorites {
		t.Error("expected pruning from env")
	}
	if cfg.PublicURL != "https://example.com/pokerater/" {
		t.Errorf("unexpected public URL %q", cfg.PublicURL)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("expected json, got %q", cfg.LogFormat)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("PRUNE_FAVORITES", "true")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "/tmp/badger", "-t", "badger", "-prune-favorites=false"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.PruneFavorites {
		t.Error("CLI should override env for -prune-favorites")
	}
	if cfg.PublicURL != "http://localhost:8080/" {
		t.Errorf("public URL should follow the port, got %q", cfg.PublicURL)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"missing database", nil, nil},
		{"bad port env", []string{"-d", "x"}, map[string]string{"PORT": "abc"}},
		{"port out of range", []string{"-d", "x", "-p", "70000"}, nil},
		{"unknown database type", []string{"-d", "x", "-t", "mysql"}, nil},
		{"bad favorites cap", []string{"-d", "x"}, map[string]string{"FAVORITES_CAP": "six"}},
		{"negative favorites cap", []string{"-d", "x", "-favorites-cap", "-1"}, nil},
		{"bad prune env", []string{"-d", "x"}, map[string]string{"PRUNE_FAVORITES": "maybe"}},
		{"relative public URL", []string{"-d", "x", "-public-url", "/pokerater"}, nil},
		{"unknown log format", []string{"-d", "x", "-log-format", "xml"}, nil},
		{"unknown flag", []string{"-d", "x", "-admin-salt", "s"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")

	path := filepath.Join(t.TempDir(), ".env")
	content := "DATABASE_URL=file:from-dotenv.db\nPORT=1234\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := LoadDotEnv(path); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseURL != "file:from-dotenv.db" {
		t.Errorf("expected DATABASE_URL from .env, got %q", cfg.DatabaseURL)
	}
	// Variables already set win over the file
	if cfg.Port != 7000 {
		t.Errorf("expected existing PORT to win, got %d", cfg.Port)
	}
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
}
