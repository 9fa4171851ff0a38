package sharelink

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkaerit/pokerater/models"
)

func roundTrip(t *testing.T, c *Codec, r models.Ratings, f []string) Result {
	t.Helper()

	link, err := c.Encode("https://example.com/pokerater/es?tab=top", r, f)
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)

	res := c.DecodeFromQuery(u.Query())
	require.NoError(t, res.Err())
	return res
}

func TestRoundTrip_Ratings(t *testing.T) {
	c := NewCodec(6)

	tests := []models.Ratings{
		{},
		{"1": 0},
		{"25": 6, "150": 3, "384": 0},
	}

	// Every value of the domain
	all := models.Ratings{}
	for v := models.MinRating; v <= models.MaxRating; v++ {
		all[fmt.Sprint(100+v)] = v
	}
	tests = append(tests, all)

	for i, r := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			res := roundTrip(t, c, r, []string{})
			assert.True(t, res.HasRatings)
			assert.Equal(t, r, res.Ratings)
		})
	}
}

func TestRoundTrip_FavoritesOrder(t *testing.T) {
	c := NewCodec(6)

	tests := [][]string{
		{},
		{"25"},
		{"6", "1", "150", "94", "130", "143"},
	}

	for i, f := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			res := roundTrip(t, c, models.Ratings{}, f)
			assert.True(t, res.HasFavorites)
			assert.Equal(t, f, res.Favorites, "order must be preserved exactly")
		})
	}
}

func TestRoundTrip_Scenario(t *testing.T) {
	c := NewCodec(6)

	res := roundTrip(t, c, models.Ratings{"A": 6, "B": 3}, []string{"A"})

	assert.Equal(t, models.Ratings{"A": 6, "B": 3}, res.Ratings)
	assert.Equal(t, []string{"A"}, res.Favorites)
}

func TestEncode_KeepsRestOfURL(t *testing.T) {
	c := NewCodec(6)

	link, err := c.Encode("https://example.com/pokerater/en?tab=top#chart", models.Ratings{"1": 2}, nil)
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "/pokerater/en", u.Path)
	assert.Equal(t, "top", u.Query().Get("tab"))
	assert.Equal(t, "chart", u.Fragment)

	raw, err := base64.StdEncoding.DecodeString(u.Query().Get(RatingsParam))
	require.NoError(t, err)
	assert.JSONEq(t, `{"1":2}`, string(raw))

	raw, err = base64.StdEncoding.DecodeString(u.Query().Get(FavoritesParam))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestEncode_ReplacesExistingParams(t *testing.T) {
	c := NewCodec(6)
	old, _ := c.EncodeRatings(models.Ratings{"9": 1})

	link, err := c.Encode("https://example.com/?ratings="+url.QueryEscape(old), models.Ratings{"9": 5}, nil)
	require.NoError(t, err)

	u, _ := url.Parse(link)
	assert.Len(t, u.Query()[RatingsParam], 1)
	r, err := c.DecodeRatings(u.Query().Get(RatingsParam))
	require.NoError(t, err)
	assert.Equal(t, models.Ratings{"9": 5}, r)
}

func TestEncode_InvalidPageURL(t *testing.T) {
	_, err := NewCodec(6).Encode("://bad", models.Ratings{}, nil)
	assert.ErrorIs(t, err, ErrInvalidPageURL)
}

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestDecode_Malformed(t *testing.T) {
	c := NewCodec(6)

	tests := []struct {
		name      string
		ratings   string
		favorites string
		wantR     error
		wantF     error
	}{
		{"ratings not base64", "%%%not-base64", "", ErrMalformedRatings, nil},
		{"ratings not json", b64("{oops"), "", ErrMalformedRatings, nil},
		{"ratings is a list", b64(`["1"]`), "", ErrMalformedRatings, nil},
		{"ratings null", b64(`null`), "", ErrMalformedRatings, nil},
		{"rating fraction", b64(`{"1":3.5}`), "", ErrMalformedRatings, nil},
		{"rating out of range", b64(`{"1":7}`), "", ErrMalformedRatings, nil},
		{"rating negative", b64(`{"1":-1}`), "", ErrMalformedRatings, nil},
		{"rating empty key", b64(`{"":3}`), "", ErrMalformedRatings, nil},
		{"favorites not base64", "", "***", nil, ErrMalformedFavorites},
		{"favorites is object", "", b64(`{"a":1}`), nil, ErrMalformedFavorites},
		{"favorites numbers", "", b64(`[1,2]`), nil, ErrMalformedFavorites},
		{"favorites duplicate", "", b64(`["1","1"]`), nil, ErrMalformedFavorites},
		{"favorites empty id", "", b64(`[""]`), nil, ErrMalformedFavorites},
		{"favorites over capacity", "", b64(`["1","2","3","4","5","6","7"]`), nil, ErrMalformedFavorites},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res Result
			require.NotPanics(t, func() { res = c.Decode(tt.ratings, tt.favorites) })

			if tt.wantR != nil {
				assert.ErrorIs(t, res.RatingsErr, tt.wantR)
				assert.False(t, res.HasRatings)
			}
			if tt.wantF != nil {
				assert.ErrorIs(t, res.FavoritesErr, tt.wantF)
				assert.False(t, res.HasFavorites)
			}
			assert.Error(t, res.Err())
		})
	}
}

func TestDecode_HalvesAreIndependent(t *testing.T) {
	c := NewCodec(6)

	res := c.Decode("garbage!", b64(`["25"]`))

	assert.False(t, res.HasRatings)
	assert.ErrorIs(t, res.RatingsErr, ErrMalformedRatings)
	assert.True(t, res.HasFavorites)
	assert.NoError(t, res.FavoritesErr)
	assert.Equal(t, []string{"25"}, res.Favorites)
}

func TestDecode_AbsentParams(t *testing.T) {
	res := NewCodec(6).Decode("", "")

	assert.False(t, res.HasRatings)
	assert.False(t, res.HasFavorites)
	assert.NoError(t, res.Err())
}

func TestDecode_UnpaddedBase64(t *testing.T) {
	c := NewCodec(6)
	param := base64.RawStdEncoding.EncodeToString([]byte(`{"1":6}`))

	r, err := c.DecodeRatings(param)

	require.NoError(t, err)
	assert.Equal(t, models.Ratings{"1": 6}, r)
}

func TestDecode_CapacityIsConfigurable(t *testing.T) {
	ten := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}
	param, err := NewCodec(10).EncodeFavorites(ten)
	require.NoError(t, err)

	f, err := NewCodec(10).DecodeFavorites(param)
	require.NoError(t, err)
	assert.Equal(t, ten, f)

	_, err = NewCodec(6).DecodeFavorites(param)
	assert.ErrorIs(t, err, ErrMalformedFavorites)
}
