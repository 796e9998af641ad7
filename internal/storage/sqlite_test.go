package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, s *Store, difficulty string, scores ...int) {
	t.Helper()
	for _, sc := range scores {
		if _, err := s.SaveScore(ScoreEntry{GameID: "flappy", Difficulty: difficulty, Score: sc}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	save(t, store, "", 42)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore("flappy", ""); high != 42 {
		t.Errorf("high score after reopen = %d, want 42", high)
	}
}

func TestStoreTopScoresByDifficulty(t *testing.T) {
	store := openTemp(t)
	save(t, store, "", 100, 50, 200)
	save(t, store, "hard", 500)

	if _, err := store.SaveScore(ScoreEntry{GameID: "flappy", Difficulty: "", Player: "alice", Score: 150}); err != nil {
		t.Fatal(err)
	}

	scores, err := store.TopScores("flappy", "", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	want := []int{200, 150, 100, 50}
	if len(scores) != len(want) {
		t.Fatalf("got %d scores, want %d", len(scores), len(want))
	}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
	if scores[1].Player != "alice" {
		t.Errorf("player = %q, want alice", scores[1].Player)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("created_at not parsed")
	}

	hard, _ := store.TopScores("flappy", "hard", 10)
	if len(hard) != 1 || hard[0].Score != 500 {
		t.Errorf("hard scores = %+v", hard)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTemp(t)
	save(t, store, "", 100, 200, 300, 400, 500)

	scores, err := store.TopScores("flappy", "", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreTiesKeepEarlierRunFirst(t *testing.T) {
	store := openTemp(t)
	first, _ := store.SaveScore(ScoreEntry{GameID: "flappy", Score: 10, Player: "first"})
	store.SaveScore(ScoreEntry{GameID: "flappy", Score: 10, Player: "second"})

	scores, _ := store.TopScores("flappy", "", 10)
	if len(scores) != 2 || scores[0].ID != first {
		t.Errorf("scores = %+v, want id %d first", scores, first)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("flappy", "")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, "", 100, 300, 200)
	save(t, store, "easy", 900)

	high, err = store.HighScore("flappy", "")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTemp(t)
	save(t, store, "", 10, 20)
	save(t, store, "hard", 4)

	stats, err := store.Stats("flappy")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d groups, want 2", len(stats))
	}

	classic := stats[0]
	if classic.Difficulty != "" || classic.Runs != 2 || classic.HighScore != 20 || classic.AvgScore != 15 {
		t.Errorf("classic stats = %+v", classic)
	}
	if stats[1].Difficulty != "hard" || stats[1].Runs != 1 {
		t.Errorf("hard stats = %+v", stats[1])
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTemp(t)
	save(t, store, "", 100, 200)
	if _, err := store.SaveScore(ScoreEntry{GameID: "other", Score: 300}); err != nil {
		t.Fatal(err)
	}

	if err := store.ClearScores("flappy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("flappy", "", 10); len(scores) != 0 {
		t.Errorf("Expected 0 flappy scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", "", 10); len(scores) != 1 {
		t.Error("Other games should not be affected by clearing flappy")
	}
}
