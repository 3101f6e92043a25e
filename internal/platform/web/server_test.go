package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/skyhop-dev/skyhop/internal/core"
	_ "github.com/skyhop-dev/skyhop/internal/games/skyhop"
	"github.com/skyhop-dev/skyhop/internal/storage"
)

func newTestServer(t *testing.T) (*httptest.Server, *storage.Store) {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	s := NewServer(":0", store, log.New(io.Discard))
	ts := httptest.NewServer(s.Routes())
	t.Cleanup(ts.Close)
	return ts, store
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decoding %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t)

	var body map[string]string
	if code := getJSON(t, ts.URL+"/api/health", &body); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestListGames(t *testing.T) {
	ts, store := newTestServer(t)
	if _, err := store.SaveScore("skyhop", 77); err != nil {
		t.Fatal(err)
	}

	var games []gameSummary
	if code := getJSON(t, ts.URL+"/api/games", &games); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if len(games) != 1 || games[0].ID != "skyhop" || games[0].Title != "Sky Hop" || games[0].HighScore != 77 {
		t.Errorf("games = %+v", games)
	}
}

func TestTopScores(t *testing.T) {
	ts, store := newTestServer(t)
	for _, s := range []int{5, 50, 20, 40} {
		if _, err := store.SaveScore("skyhop", s); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name   string
		query  string
		status int
		want   []int
	}{
		{"default limit", "", http.StatusOK, []int{50, 40, 20, 5}},
		{"limit", "?limit=2", http.StatusOK, []int{50, 40}},
		{"bad limit", "?limit=abc", http.StatusBadRequest, nil},
		{"zero limit", "?limit=0", http.StatusBadRequest, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var scores []storage.ScoreEntry
			var out any = &scores
			if tc.status != http.StatusOK {
				out = nil
			}

			code := getJSON(t, ts.URL+"/api/scores/skyhop"+tc.query, out)
			if code != tc.status {
				t.Fatalf("status = %d, expected %d", code, tc.status)
			}
			if tc.want == nil {
				return
			}
			if len(scores) != len(tc.want) {
				t.Fatalf("got %d scores, expected %d", len(scores), len(tc.want))
			}
			for i, s := range scores {
				if s.Score != tc.want[i] {
					t.Errorf("scores[%d] = %d, expected %d", i, s.Score, tc.want[i])
				}
			}
		})
	}
}

func TestUnknownGame(t *testing.T) {
	ts, _ := newTestServer(t)

	for _, path := range []string{"/api/scores/pong", "/api/stats/pong"} {
		var body map[string]string
		if code := getJSON(t, ts.URL+path, &body); code != http.StatusNotFound {
			t.Errorf("%s status = %d, expected 404", path, code)
		}
		if body["error"] == "" {
			t.Errorf("%s should carry an error message", path)
		}
	}
}

func TestEmptyListsAreArrays(t *testing.T) {
	ts, _ := newTestServer(t)

	for _, path := range []string{"/api/scores/skyhop", "/api/runs"} {
		var raw json.RawMessage
		getJSON(t, ts.URL+path, &raw)
		if string(raw) != "[]" {
			t.Errorf("%s = %s, expected []", path, raw)
		}
	}
}

func TestStatsAndRuns(t *testing.T) {
	ts, store := newTestServer(t)
	if _, err := store.SaveScore("skyhop", 10); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveScore("skyhop", 30); err != nil {
		t.Fatal(err)
	}
	for _, cause := range []string{"fell", "enemy", "fell"} {
		if _, err := store.SaveRun("skyhop", "", core.RunSummary{Score: 1, Cause: cause}); err != nil {
			t.Fatal(err)
		}
	}

	var stats storage.GameStats
	if code := getJSON(t, ts.URL+"/api/stats/skyhop", &stats); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.AvgScore != 20 {
		t.Errorf("stats = %+v", stats)
	}

	var runs []storage.RunRecord
	if code := getJSON(t, ts.URL+"/api/runs?limit=2", &runs); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if len(runs) != 2 || runs[0].Cause != "fell" || runs[1].Cause != "enemy" {
		t.Errorf("runs = %+v", runs)
	}
}

func TestParseLimitCaps(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/runs?limit=5000", nil)
	limit, ok := parseLimit(httptest.NewRecorder(), req)
	if !ok || limit != maxLimit {
		t.Errorf("parseLimit = (%d, %v), expected (%d, true)", limit, ok, maxLimit)
	}
}
