package models

import (
	"encoding/json"
	"strconv"
)

// Rating bounds
const (
	MinRating = 0
	MaxRating = 6
)

// DefaultFavoritesCap is the canonical size of the top favorites list.
const DefaultFavoritesCap = 6

// ImageStatus tracks lazy image enrichment of catalog entries
type ImageStatus string

const (
	ImagePending ImageStatus = "pending"
	ImageLoaded  ImageStatus = "loaded"
	ImageFailed  ImageStatus = "failed"
)

// Band is the colour band used by charts and rating cards
type Band string

const (
	BandNone Band = ""
	BandLow  Band = "low"
	BandMid  Band = "mid"
	BandHigh Band = "high"
)

// Domain types

type Item struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	ImageRef    string      `json:"image_ref,omitempty"`
	ImageStatus ImageStatus `json:"image_status"`
}

// NumericID returns the item id as an integer, or 0 if it is not numeric.
func (i Item) NumericID() int {
	n, err := strconv.Atoi(i.ID)
	if err != nil {
		return 0
	}
	return n
}

type Group struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	Items       []Item      `json:"items"`
	ImageStatus ImageStatus `json:"image_status"`
}

// Clone returns a copy of the group that shares no item storage with g.
func (g Group) Clone() Group {
	c := g
	c.Items = make([]Item, len(g.Items))
	copy(c.Items, g.Items)
	return c
}

// item_id -> rating (0..6). Absent key means unrated.
type Ratings map[string]int

// Clone returns a copy of r. A nil map clones to an empty map.
func (r Ratings) Clone() Ratings {
	c := make(Ratings, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

// NullMean is a group average that may be missing.
// Valid is false when no item of the group has been rated.
type NullMean struct {
	Value float64
	Valid bool
}

func (m NullMean) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(m.Value)
}

func (m *NullMean) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = NullMean{}
		return nil
	}
	if err := json.Unmarshal(data, &m.Value); err != nil {
		return err
	}
	m.Valid = true
	return nil
}

type Score struct {
	GroupID    int      `json:"group_id"`
	GroupName  string   `json:"group_name"`
	Label      string   `json:"label"`
	Mean       NullMean `json:"mean"`
	RatedCount int      `json:"rated_count"`
	Total      int      `json:"total"`
	Band       Band     `json:"band,omitempty"`
}

// Request types

type SetRatingRequest struct {
	Rating *int `json:"rating"`
}

type AddFavoriteRequest struct {
	ItemID string `json:"item_id"`
}

type ReorderFavoritesRequest struct {
	From *int `json:"from"`
	To   *int `json:"to"`
}

// Response types

type CatalogResponse struct {
	Ready  bool    `json:"ready"`
	Groups []Group `json:"groups"`
}

type SessionResponse struct {
	SessionID string   `json:"session_id"`
	DeviceID  string   `json:"device_id"`
	Ratings   Ratings  `json:"ratings"`
	Favorites []string `json:"favorites"`
	Scores    []Score  `json:"scores"`
}

type RatingResponse struct {
	ItemID string `json:"item_id"`
	Rating int    `json:"rating"`
}

type FavoritesResponse struct {
	Favorites []Item   `json:"favorites"`
	IDs       []string `json:"ids"`
	Capacity  int      `json:"capacity"`
}

type EligibleResponse struct {
	Items []Item `json:"items"`
}

type ShareLinkResponse struct {
	URL string `json:"url"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Retry   bool   `json:"retry,omitempty"`
}
