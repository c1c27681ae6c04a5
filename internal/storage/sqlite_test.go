package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

func saveScore(t *testing.T, store *Store, mode string, score int) string {
	t.Helper()
	id, err := store.SaveRun(Run{Mode: mode, Score: score, Length: 3, Apples: 0})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAssignsRunID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{Mode: "normal", Score: 42, Length: 7, Apples: 4})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("run ID %q is not a UUID: %v", id, err)
	}

	runs, err := store.TopScores("normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].RunID != id {
		t.Fatalf("TopScores() = %+v, want the saved run %s", runs, id)
	}
	run := runs[0]
	if run.Mode != "normal" || run.Score != 42 || run.Length != 7 || run.Apples != 4 {
		t.Errorf("run = %+v", run)
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestStoreSaveKeepsExplicitRunID(t *testing.T) {
	store := openTestStore(t)
	want := uuid.NewString()

	id, err := store.SaveRun(Run{RunID: want, Mode: "hard", Score: 1})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != want {
		t.Errorf("SaveRun() = %q, want %q", id, want)
	}

	// Same run recorded twice is rejected
	if _, err := store.SaveRun(Run{RunID: want, Mode: "hard", Score: 1}); err == nil {
		t.Error("expected error saving duplicate run ID")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saveScore(t, store, "normal", 100)
	saveScore(t, store, "normal", 50)
	saveScore(t, store, "normal", 200)
	// Different mode
	saveScore(t, store, "hard", 500)

	scores, err := store.TopScores("normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	for i, want := range []int{200, 100, 50} {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, want)
		}
	}

	hardScores, err := store.TopScores("hard", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(hardScores) != 1 {
		t.Errorf("Expected 1 hard score, got %d", len(hardScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		saveScore(t, store, "test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	scores, _ = store.TopScores("test", 0)
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty mode, got %d", high)
	}

	saveScore(t, store, "normal", 100)
	saveScore(t, store, "normal", 300)
	saveScore(t, store, "normal", 200)

	high, err = store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	saveScore(t, store, "normal", 100)
	saveScore(t, store, "normal", 200)
	saveScore(t, store, "easy", 300)

	if err := store.ClearScores("normal"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	normal, _ := store.TopScores("normal", 10)
	if len(normal) != 0 {
		t.Errorf("Expected 0 normal scores after clear, got %d", len(normal))
	}

	easy, _ := store.TopScores("easy", 10)
	if len(easy) != 1 {
		t.Errorf("Easy scores should not be affected by clearing normal")
	}
}

func TestStoreModeStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetModeStats("normal")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if empty.RunsCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(Run{Mode: "normal", Score: 10, Length: 4, Apples: 1})
	store.SaveRun(Run{Mode: "normal", Score: 30, Length: 6, Apples: 3})
	store.SaveRun(Run{Mode: "fixed", Score: 5, Length: 3, Apples: 0})

	stats, err := store.GetModeStats("normal")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 30 || stats.AvgScore != 20 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TotalApples != 4 || stats.LongestWorm != 6 {
		t.Errorf("apples/length = %d/%d, want 4/6", stats.TotalApples, stats.LongestWorm)
	}

	all, err := store.GetAllModeStats()
	if err != nil {
		t.Fatalf("GetAllModeStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 modes, got %d", len(all))
	}
	if all["fixed"].RunsCount != 1 || all["normal"].RunsCount != 2 {
		t.Errorf("all stats = normal %+v fixed %+v", all["normal"], all["fixed"])
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
