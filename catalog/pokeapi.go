// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/dkaerit/pokerater/models"
)

const (
	DefaultBaseURL   = "https://pokeapi.co/api/v2"
	rateLimitDelay   = 50 * time.Millisecond // 20 req/sec
	requestTimeout   = 30 * time.Second
	maxRetries       = 3
	initialBackoff   = 500 * time.Millisecond
	maxBackoff       = 8 * time.Second
	fetchConcurrency = 8
)

// NotFoundError is returned for HTTP 404 responses.
type NotFoundError struct {
	URL string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s", e.URL)
}

// PokeAPI loads generations and sprites from a PokeAPI-compatible server.
type PokeAPI struct {
	baseURL     string
	language    string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	userAgent   string
	sleep       func(context.Context, time.Duration) error
}

// NewPokeAPI creates a client. language selects localized group names ("es", "en").
func NewPokeAPI(baseURL, language string) *PokeAPI {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &PokeAPI{
		baseURL:  strings.TrimRight(baseURL, "/"),
		language: language,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		rateLimiter: rate.NewLimiter(rate.Every(rateLimitDelay), fetchConcurrency),
		userAgent:   "PokeRater/1.0",
		sleep:       sleepContext,
	}
}

// PokeAPI wire types

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type generationList struct {
	Count   int             `json:"count"`
	Results []namedResource `json:"results"`
}

type localizedName struct {
	Name     string        `json:"name"`
	Language namedResource `json:"language"`
}

type generationDetail struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Names          []localizedName `json:"names"`
	PokemonSpecies []namedResource `json:"pokemon_species"`
}

type pokemonDetail struct {
	ID      int `json:"id"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
	} `json:"sprites"`
}

// ListGroups fetches every generation with its species, without images.
func (c *PokeAPI) ListGroups(ctx context.Context) ([]models.Group, error) {
	var list generationList
	if err := c.doRequest(ctx, c.baseURL+"/generation?limit=100", &list); err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}

	groups := make([]models.Group, len(list.Results))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for i, res := range list.Results {
		g.Go(func() error {
			var detail generationDetail
			if err := c.doRequest(gctx, res.URL, &detail); err != nil {
				return fmt.Errorf("failed to get generation %s: %w", res.Name, err)
			}
			groups[i] = c.toGroup(detail)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })
	return groups, nil
}

// ResolveGroupImages fills the image of every item that is not loaded yet.
// Items that fail are marked failed and reported in the returned error;
// the returned group always carries whatever was resolved.
func (c *PokeAPI) ResolveGroupImages(ctx context.Context, group models.Group) (models.Group, error) {
	out := group.Clone()

	var (
		mu   sync.Mutex
		errs []error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for i := range out.Items {
		if out.Items[i].ImageStatus == models.ImageLoaded {
			continue
		}
		g.Go(func() error {
			var detail pokemonDetail
			url := fmt.Sprintf("%s/pokemon/%s", c.baseURL, out.Items[i].ID)
			err := c.doRequest(gctx, url, &detail)
			if err == nil && detail.Sprites.FrontDefault == "" {
				err = fmt.Errorf("no sprite for pokemon %s", out.Items[i].ID)
			}

			// Each goroutine owns out.Items[i]
			if err != nil {
				out.Items[i].ImageStatus = models.ImageFailed
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				return nil
			}
			out.Items[i].ImageRef = detail.Sprites.FrontDefault
			out.Items[i].ImageStatus = models.ImageLoaded
			return nil
		})
	}

	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return out, err
	}
	if len(errs) > 0 {
		return out, fmt.Errorf("failed to resolve %d images of %s: %w", len(errs), group.Slug, errors.Join(errs...))
	}
	return out, nil
}

func (c *PokeAPI) toGroup(detail generationDetail) models.Group {
	items := make([]models.Item, 0, len(detail.PokemonSpecies))
	for _, species := range detail.PokemonSpecies {
		id := idFromURL(species.URL)
		if id == "" {
			continue
		}
		items = append(items, models.Item{
			ID:          id,
			Name:        species.Name,
			ImageStatus: models.ImagePending,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].NumericID() < items[j].NumericID()
	})

	return models.Group{
		ID:          detail.ID,
		Name:        c.groupName(detail),
		Slug:        detail.Name,
		Items:       items,
		ImageStatus: models.ImagePending,
	}
}

// groupName prefers the localized name and falls back to "Generation I" style.
func (c *PokeAPI) groupName(detail generationDetail) string {
	for _, n := range detail.Names {
		if n.Language.Name == c.language && n.Name != "" {
			return n.Name
		}
	}
	if rest, ok := strings.CutPrefix(detail.Name, "generation-"); ok {
		return "Generation " + strings.ToUpper(rest)
	}
	return detail.Name
}

// idFromURL extracts the trailing numeric id of a resource URL
// (".../pokemon-species/25/" -> "25").
func idFromURL(u string) string {
	last := path.Base(strings.TrimRight(u, "/"))
	if _, err := strconv.Atoi(last); err != nil {
		return ""
	}
	return last
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// doRequest performs an HTTP request with rate limiting and retry logic.
func (c *PokeAPI) doRequest(ctx context.Context, url string, result interface{}) error {
	var lastErr error
	backoff := initialBackoff

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter error: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("HTTP request failed: %w", err)
			if ctx.Err() != nil {
				return lastErr
			}
			if attempt < maxRetries {
				if err := c.sleep(ctx, backoff); err != nil {
					return fmt.Errorf("%w (retry aborted: %w)", lastErr, err)
				}
				backoff = min(backoff*2, maxBackoff)
				continue
			}
			return lastErr
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			if readErr != nil {
				return fmt.Errorf("failed to read response body: %w", readErr)
			}
			if err := json.Unmarshal(body, result); err != nil {
				return fmt.Errorf("failed to parse JSON response: %w", err)
			}
			return nil

		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			lastErr = fmt.Errorf("API request failed with status %d", resp.StatusCode)
			if attempt < maxRetries {
				wait := backoff
				if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
					if d, err := time.ParseDuration(retryAfter + "s"); err == nil {
						wait = d
					}
				}
				if err := c.sleep(ctx, wait); err != nil {
					return fmt.Errorf("%w (retry aborted: %w)", lastErr, err)
				}
				backoff = min(backoff*2, maxBackoff)
				continue
			}
			return lastErr

		case resp.StatusCode == http.StatusNotFound:
			return &NotFoundError{URL: url}

		default:
			return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
		}
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}
