package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dkaerit/pokerater/models"
	"github.com/dkaerit/pokerater/testutil"
)

func intPtr(v int) *int { return &v }

func TestSetRating(t *testing.T) {
	m, s := setupSessions(t, testutil.GetTestConfig())
	handler := NewRatingsHandler(m)

	tests := []struct {
		name           string
		itemID         string
		body           interface{}
		expectedStatus int
	}{
		{"valid rating", "1", models.SetRatingRequest{Rating: intPtr(6)}, http.StatusOK},
		{"zero is a rating", "4", models.SetRatingRequest{Rating: intPtr(0)}, http.StatusOK},
		{"above range", "7", models.SetRatingRequest{Rating: intPtr(7)}, http.StatusBadRequest},
		{"below range", "7", models.SetRatingRequest{Rating: intPtr(-1)}, http.StatusBadRequest},
		{"missing rating", "7", map[string]string{}, http.StatusBadRequest},
		{"fractional rating", "7", map[string]float64{"rating": 3.5}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("PUT", "/sessions/"+s.ID+"/ratings/"+tt.itemID, tt.body, nil)
			req.SetPathValue("id", s.ID)
			req.SetPathValue("item", tt.itemID)
			w := httptest.NewRecorder()

			handler.SetRating(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	// Rejected writes leave the map untouched
	got := s.Ratings()
	if len(got) != 2 || got["1"] != 6 || got["4"] != 0 {
		t.Errorf("Unexpected ratings after table: %v", got)
	}
}

func TestSetRating_InvalidJSON(t *testing.T) {
	m, s := setupSessions(t, testutil.GetTestConfig())
	handler := NewRatingsHandler(m)

	req := httptest.NewRequest("PUT", "/sessions/"+s.ID+"/ratings/1", strings.NewReader("{"))
	req.SetPathValue("id", s.ID)
	req.SetPathValue("item", "1")
	w := httptest.NewRecorder()

	handler.SetRating(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestGetRating(t *testing.T) {
	m, s := setupSessions(t, testutil.GetTestConfig())
	rate(t, s, map[string]int{"1": 0})
	handler := NewRatingsHandler(m)

	tests := []struct {
		name           string
		sessionID      string
		itemID         string
		expectedStatus int
	}{
		{"rated zero", s.ID, "1", http.StatusOK},
		{"unrated", s.ID, "4", http.StatusNotFound},
		{"unknown session", "ses-missing", "1", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/sessions/"+tt.sessionID+"/ratings/"+tt.itemID, nil, nil)
			req.SetPathValue("id", tt.sessionID)
			req.SetPathValue("item", tt.itemID)
			w := httptest.NewRecorder()

			handler.GetRating(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp models.RatingResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.ItemID != "1" || resp.Rating != 0 {
				t.Errorf("Unexpected response %+v", resp)
			}
		})
	}
}

func TestListRatings(t *testing.T) {
	m, s := setupSessions(t, testutil.GetTestConfig())
	rate(t, s, map[string]int{"1": 6, "152": 2})
	handler := NewRatingsHandler(m)

	req := testutil.MakeRequest("GET", "/sessions/"+s.ID+"/ratings", nil, nil)
	req.SetPathValue("id", s.ID)
	w := httptest.NewRecorder()

	handler.ListRatings(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.Ratings
	testutil.AssertJSON(t, w, &resp)
	if len(resp) != 2 || resp["1"] != 6 || resp["152"] != 2 {
		t.Errorf("Unexpected ratings %v", resp)
	}
}
