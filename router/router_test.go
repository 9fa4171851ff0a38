package router

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/dkaerit/pokerater/cliparse"
	"github.com/dkaerit/pokerater/locale"
	"github.com/dkaerit/pokerater/middleware"
	"github.com/dkaerit/pokerater/models"
	"github.com/dkaerit/pokerater/testutil"
)

func setupRouter(t *testing.T, cfg cliparse.Config) *http.ServeMux {
	t.Helper()

	c, _ := testutil.SetupTestCatalog(t)
	sessions, _ := testutil.SetupTestSessions(t, c, cfg)

	bundle, err := locale.Load()
	if err != nil {
		t.Fatalf("Failed to load dictionaries: %v", err)
	}

	return NewRouter(c, sessions, bundle, cfg)
}

func TestHealthEndpoint(t *testing.T) {
	mux := setupRouter(t, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := setupRouter(t, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "pokerater API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux := setupRouter(t, testutil.GetTestConfig())

	// Unknown sessions return 404 from the handler, which still proves the route exists
	testCases := []struct {
		method string
		path   string
	}{
		// Health and root
		{"GET", "/health"},
		{"GET", "/"},

		// Catalog and strings
		{"GET", "/catalog"},
		{"POST", "/catalog/reload"},
		{"POST", "/catalog/groups/1/images"},
		{"GET", "/dictionary"},

		// Sessions
		{"POST", "/sessions"},
		{"GET", "/sessions/test-id"},
		{"DELETE", "/sessions/test-id"},

		// Ratings
		{"GET", "/sessions/test-id/ratings"},
		{"GET", "/sessions/test-id/ratings/1"},
		{"PUT", "/sessions/test-id/ratings/1"},

		// Favorites
		{"GET", "/sessions/test-id/favorites"},
		{"GET", "/sessions/test-id/favorites/eligible"},
		{"POST", "/sessions/test-id/favorites"},
		{"POST", "/sessions/test-id/favorites/reorder"},
		{"DELETE", "/sessions/test-id/favorites/1"},

		// Derived views
		{"GET", "/sessions/test-id/scores"},
		{"GET", "/sessions/test-id/share"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := setupRouter(t, testutil.GetTestConfig())

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},                     // Only GET is defined
		{"DELETE", "/catalog"},                  // Only GET is defined
		{"POST", "/sessions/test-id/ratings/1"}, // Ratings are set with PUT
		{"PUT", "/sessions/test-id/favorites"},  // Only GET and POST are defined
		{"POST", "/sessions/test-id/scores"},    // Read only
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPathParameterExtraction(t *testing.T) {
	mux := setupRouter(t, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/sessions", nil, map[string]string{
		middleware.DeviceHeader: testutil.TestDeviceID,
	}))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.SessionResponse
	testutil.AssertJSON(t, w, &created)

	t.Run("session ID and item extraction", func(t *testing.T) {
		rating := 5
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("PUT", "/sessions/"+created.SessionID+"/ratings/4",
			models.SetRatingRequest{Rating: &rating}, nil))

		if w.Code == http.StatusNotFound {
			t.Error("Route should have matched the session")
		}
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.RatingResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.ItemID != "4" || resp.Rating != 5 {
			t.Errorf("Expected item 4 rated 5, got %+v", resp)
		}
	})

	t.Run("group ID extraction", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest("POST", "/catalog/groups/2/images", nil))
		testutil.AssertStatus(t, w, http.StatusAccepted)
	})
}

func TestSpecificMethodRouting(t *testing.T) {
	mux := setupRouter(t, testutil.GetTestConfig())

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"POST to health endpoint", "POST", "/health", http.StatusMethodNotAllowed},
		{"PUT to reorder endpoint", "PUT", "/sessions/test-id/favorites/reorder", http.StatusMethodNotAllowed},
		{"GET unknown session", "GET", "/sessions/test-id", http.StatusNotFound},
		{"create without device header", "POST", "/sessions", http.StatusBadRequest},
		{"non numeric group", "POST", "/catalog/groups/abc/images", http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected %d for %s %s, got %d", tc.expectedStatus, tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestShareLinkFlow(t *testing.T) {
	mux := setupRouter(t, testutil.GetTestConfig())
	device := map[string]string{middleware.DeviceHeader: testutil.TestDeviceID}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/sessions", nil, device))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.SessionResponse
	testutil.AssertJSON(t, w, &created)
	base := "/sessions/" + created.SessionID

	for item, v := range map[string]int{"1": 6, "4": 3} {
		rating := v
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("PUT", base+"/ratings/"+item, models.SetRatingRequest{Rating: &rating}, nil))
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", base+"/favorites", models.AddFavoriteRequest{ItemID: "1"}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", base+"/share", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var share models.ShareLinkResponse
	testutil.AssertJSON(t, w, &share)

	link, err := url.Parse(share.URL)
	if err != nil {
		t.Fatalf("Share URL does not parse: %v", err)
	}

	// Open the link on another device
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/sessions?"+link.RawQuery, nil, map[string]string{
		middleware.DeviceHeader: "7ca7b810-9dad-11d1-80b4-00c04fd430c8",
	}))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var opened models.SessionResponse
	testutil.AssertJSON(t, w, &opened)

	if opened.Ratings["1"] != 6 || opened.Ratings["4"] != 3 || len(opened.Ratings) != 2 {
		t.Errorf("Expected ratings {1:6, 4:3}, got %v", opened.Ratings)
	}
	if len(opened.Favorites) != 1 || opened.Favorites[0] != "1" {
		t.Errorf("Expected favorites [1], got %v", opened.Favorites)
	}

	// Generation I: (6 + 3) / 2
	if len(opened.Scores) != 2 || !opened.Scores[0].Mean.Valid || opened.Scores[0].Mean.Value != 4.5 {
		t.Errorf("Expected Generation I mean 4.5, got %+v", opened.Scores)
	}
	if opened.Scores[1].Mean.Valid {
		t.Errorf("Expected Generation II to have no data, got %+v", opened.Scores[1])
	}
}
