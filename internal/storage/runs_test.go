package storage

import (
	"path/filepath"
	"testing"

	"github.com/skyhop-dev/skyhop/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	sum := core.RunSummary{
		Score:             125,
		Distance:          1050.5,
		Ticks:             900,
		Jumps:             14,
		EnemiesDefeated:   2,
		PowerUpsCollected: 1,
		Cause:             "enemy",
	}
	id, err := store.SaveRun("skyhop", "sess-1", sum)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("expected positive ID, got %d", id)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}

	r := runs[0]
	if r.GameID != "skyhop" || r.SessionID != "sess-1" {
		t.Errorf("run identity = %q/%q", r.GameID, r.SessionID)
	}
	if r.Score != 125 || r.Distance != 1050.5 || r.Ticks != 900 || r.Jumps != 14 {
		t.Errorf("run stats = %+v", r)
	}
	if r.EnemiesDefeated != 2 || r.PowerUpsCollected != 1 || r.Cause != "enemy" {
		t.Errorf("run outcome = %+v", r)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreRecentRunsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		if _, err := store.SaveRun("skyhop", "", core.RunSummary{Score: i, Cause: "fell"}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	// Newest first
	if runs[0].Score != 5 || runs[1].Score != 4 || runs[2].Score != 3 {
		t.Errorf("runs not newest first: %d, %d, %d", runs[0].Score, runs[1].Score, runs[2].Score)
	}

	all, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("default limit should return all 5 runs, got %d", len(all))
	}
}

func TestStoreSessionRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("skyhop", "alice", core.RunSummary{Score: 10, Cause: "fell"})
	store.SaveRun("skyhop", "bob", core.RunSummary{Score: 20, Cause: "enemy"})
	store.SaveRun("skyhop", "alice", core.RunSummary{Score: 30, Cause: "enemy"})

	runs, err := store.SessionRuns("alice", 10)
	if err != nil {
		t.Fatalf("SessionRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs for alice, got %d", len(runs))
	}
	for _, r := range runs {
		if r.SessionID != "alice" {
			t.Errorf("unexpected session %q", r.SessionID)
		}
	}
}

func TestStoreClearScoresRemovesRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("skyhop", 100)
	store.SaveRun("skyhop", "", core.RunSummary{Score: 100, Cause: "fell"})
	store.SaveRun("rival", "", core.RunSummary{Score: 5, Cause: "fell"})

	if err := store.ClearScores("skyhop"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	runs, _ := store.RecentRuns(10)
	if len(runs) != 1 || runs[0].GameID != "rival" {
		t.Errorf("only rival runs should remain, got %+v", runs)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("skyhop")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore("skyhop", 100)
	store.SaveScore("skyhop", 300)
	store.SaveScore("rival", 50)

	stats, err := store.GetGameStats("skyhop")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["rival"].HighScore != 50 {
		t.Errorf("all stats = %+v", all)
	}
}
