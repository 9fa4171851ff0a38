// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sharelink

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"

	"github.com/dkaerit/pokerater/models"
)

// Query parameter names
const (
	RatingsParam   = "ratings"
	FavoritesParam = "favorites"
)

var (
	ErrMalformedRatings   = errors.New("malformed ratings parameter")
	ErrMalformedFavorites = errors.New("malformed favorites parameter")
	ErrInvalidPageURL     = errors.New("invalid page URL")
)

// Codec converts ratings and favorites to and from share-link parameters.
type Codec struct {
	validate *validator.Validate
	capacity int
}

// NewCodec creates a codec that accepts at most capacity favorites.
func NewCodec(capacity int) *Codec {
	if capacity <= 0 {
		capacity = models.DefaultFavoritesCap
	}
	return &Codec{validate: validator.New(), capacity: capacity}
}

// Result holds both decoded halves. A half that was absent or malformed
// has its Has flag unset; a malformed half also carries its error.
type Result struct {
	Ratings      models.Ratings
	HasRatings   bool
	Favorites    []string
	HasFavorites bool
	RatingsErr   error
	FavoritesErr error
}

// Err joins the per-half decode errors.
func (r Result) Err() error {
	return errors.Join(r.RatingsErr, r.FavoritesErr)
}

// Encode sets the ratings and favorites parameters on pageURL.
// Path, fragment and other query parameters are kept.
func (c *Codec) Encode(pageURL string, r models.Ratings, favorites []string) (string, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPageURL, err)
	}

	ratingsParam, err := c.EncodeRatings(r)
	if err != nil {
		return "", err
	}
	favoritesParam, err := c.EncodeFavorites(favorites)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set(RatingsParam, ratingsParam)
	q.Set(FavoritesParam, favoritesParam)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// EncodeRatings returns base64(JSON(r)).
func (c *Codec) EncodeRatings(r models.Ratings) (string, error) {
	if r == nil {
		r = models.Ratings{}
	}
	return encode(r)
}

// EncodeFavorites returns base64(JSON(favorites)).
func (c *Codec) EncodeFavorites(favorites []string) (string, error) {
	if favorites == nil {
		favorites = []string{}
	}
	return encode(favorites)
}

func encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode share payload: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Decode reads both parameters independently. An empty parameter is absent.
// Decode never fails as a whole; check the per-half errors.
func (c *Codec) Decode(ratingsParam, favoritesParam string) Result {
	var res Result

	if ratingsParam != "" {
		r, err := c.DecodeRatings(ratingsParam)
		if err != nil {
			res.RatingsErr = err
		} else {
			res.Ratings, res.HasRatings = r, true
		}
	}

	if favoritesParam != "" {
		f, err := c.DecodeFavorites(favoritesParam)
		if err != nil {
			res.FavoritesErr = err
		} else {
			res.Favorites, res.HasFavorites = f, true
		}
	}

	return res
}

// DecodeFromQuery reads the share parameters from a parsed query string.
func (c *Codec) DecodeFromQuery(q url.Values) Result {
	return c.Decode(q.Get(RatingsParam), q.Get(FavoritesParam))
}

// DecodeRatings parses one ratings parameter.
func (c *Codec) DecodeRatings(param string) (models.Ratings, error) {
	data, err := decodeBase64(param)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRatings, err)
	}

	var r models.Ratings
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRatings, err)
	}
	if r == nil {
		return nil, fmt.Errorf("%w: null payload", ErrMalformedRatings)
	}

	if err := c.validate.Var(r, "dive,keys,required,endkeys,min=0,max=6"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRatings, err)
	}

	return r, nil
}

// DecodeFavorites parses one favorites parameter.
func (c *Codec) DecodeFavorites(param string) ([]string, error) {
	data, err := decodeBase64(param)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFavorites, err)
	}

	var f []string
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFavorites, err)
	}
	if f == nil {
		return nil, fmt.Errorf("%w: null payload", ErrMalformedFavorites)
	}

	rule := fmt.Sprintf("max=%d,unique,dive,required", c.capacity)
	if err := c.validate.Var(f, rule); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFavorites, err)
	}

	return f, nil
}

// decodeBase64 accepts padded and unpadded standard base64.
func decodeBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}
	if raw, rawErr := base64.RawStdEncoding.DecodeString(s); rawErr == nil {
		return raw, nil
	}
	return nil, err
}
