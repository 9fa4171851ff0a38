// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dkaerit/pokerater/catalog"
	"github.com/dkaerit/pokerater/cliparse"
	"github.com/dkaerit/pokerater/models"
	"github.com/dkaerit/pokerater/session"
	"github.com/dkaerit/pokerater/sharelink"
	"github.com/dkaerit/pokerater/storage"
)

// TestDeviceID is a valid X-Device-UUID value
const TestDeviceID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

// StaticLoader is an in-memory catalog.Loader
type StaticLoader struct {
	mu         sync.Mutex
	groups     []models.Group
	listErr    error
	failImages map[int]bool
}

// NewStaticLoader serves the given groups
func NewStaticLoader(groups []models.Group) *StaticLoader {
	return &StaticLoader{groups: groups, failImages: map[int]bool{}}
}

// SetListError makes ListGroups fail until cleared with nil
func (l *StaticLoader) SetListError(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listErr = err
}

// FailImages makes image resolution of a group fail
func (l *StaticLoader) FailImages(groupID int, fail bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failImages[groupID] = fail
}

func (l *StaticLoader) ListGroups(context.Context) ([]models.Group, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.listErr != nil {
		return nil, l.listErr
	}
	out := make([]models.Group, len(l.groups))
	for i, g := range l.groups {
		out[i] = g.Clone()
	}
	return out, nil
}

func (l *StaticLoader) ResolveGroupImages(_ context.Context, g models.Group) (models.Group, error) {
	l.mu.Lock()
	fail := l.failImages[g.ID]
	l.mu.Unlock()

	out := g.Clone()
	for i := range out.Items {
		if fail {
			out.Items[i].ImageStatus = models.ImageFailed
			continue
		}
		out.Items[i].ImageRef = "https://img.example/" + out.Items[i].ID + ".png"
		out.Items[i].ImageStatus = models.ImageLoaded
	}
	if fail {
		return out, errors.New("sprites unavailable")
	}
	return out, nil
}

// TestGroups returns two small generations: 1 = {1, 4, 7}, 2 = {152, 155}
func TestGroups() []models.Group {
	item := func(id, name string) models.Item {
		return models.Item{ID: id, Name: name, ImageStatus: models.ImagePending}
	}
	return []models.Group{
		{
			ID: 1, Name: "Generation I", Slug: "generation-i", ImageStatus: models.ImagePending,
			Items: []models.Item{item("1", "bulbasaur"), item("4", "charmander"), item("7", "squirtle")},
		},
		{
			ID: 2, Name: "Generation II", Slug: "generation-ii", ImageStatus: models.ImagePending,
			Items: []models.Item{item("152", "chikorita"), item("155", "cyndaquil")},
		},
	}
}

// SetupTestCatalog returns a catalog loaded from TestGroups
func SetupTestCatalog(t *testing.T) (*catalog.Catalog, *StaticLoader) {
	t.Helper()

	loader := NewStaticLoader(TestGroups())
	c := catalog.New(loader)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Failed to load test catalog: %v", err)
	}
	return c, loader
}

// SetupTestSessions returns a session manager over in-memory storage
func SetupTestSessions(t *testing.T, c *catalog.Catalog, cfg cliparse.Config) (*session.Manager, storage.Backend) {
	t.Helper()

	backend := storage.NewMemory()
	t.Cleanup(func() { backend.Close() })

	m := session.NewManager(backend, c, sharelink.NewCodec(cfg.FavoritesCap), session.Options{
		FavoritesCap:   cfg.FavoritesCap,
		PruneFavorites: cfg.PruneFavorites,
	})
	return m, backend
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		CatalogURL:   catalog.DefaultBaseURL,
		CatalogLang:  "es",
		FavoritesCap: models.DefaultFavoritesCap,
		PublicURL:    "https://example.com/pokerater/",
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
