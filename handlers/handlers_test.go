package handlers

import (
	"context"
	"strconv"
	"testing"

	"github.com/dkaerit/pokerater/cliparse"
	"github.com/dkaerit/pokerater/session"
	"github.com/dkaerit/pokerater/testutil"
)

// setupSessions returns a manager over the test catalog and one open session
func setupSessions(t *testing.T, cfg cliparse.Config) (*session.Manager, *session.Session) {
	t.Helper()

	c, _ := testutil.SetupTestCatalog(t)
	m, _ := testutil.SetupTestSessions(t, c, cfg)

	s, err := m.Create(context.Background(), testutil.TestDeviceID, "", "")
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}
	return m, s
}

// rate sets ratings directly on a session
func rate(t *testing.T, s *session.Session, ratings map[string]int) {
	t.Helper()
	for id, v := range ratings {
		if err := s.SetRating(context.Background(), id, v); err != nil {
			t.Fatalf("Failed to rate %s: %v", id, err)
		}
	}
}

func mustAtoi(t *testing.T, s string) int {
	t.Helper()
	n, err := strconv.Atoi(s)
	if err != nil {
		t.Fatalf("not a number: %q", s)
	}
	return n
}
