package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("candy", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("candy", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("candy", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("candy_endless", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for candy
	scores, err := store.TopScores("candy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for endless
	endlessScores, err := store.TopScores("candy_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(endlessScores) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endlessScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("candy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("candy", 100)
	store.SaveScore("candy", 300)
	store.SaveScore("candy", 200)

	high, err = store.HighScore("candy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("candy", 100)
	store.SaveScore("candy", 200)
	store.SaveScore("candy_endless", 300)

	// Clear only candy scores
	err = store.ClearScores("candy")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Candy should be empty
	candyScores, _ := store.TopScores("candy", 10)
	if len(candyScores) != 0 {
		t.Errorf("Expected 0 candy scores after clear, got %d", len(candyScores))
	}

	// Endless should still have scores
	endlessScores, _ := store.TopScores("candy_endless", 10)
	if len(endlessScores) != 1 {
		t.Errorf("Endless scores should not be affected by clearing candy")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
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

func TestStoreCompleteLevelKeepsBest(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if err := store.CompleteLevel(1, 2, 1800); err != nil {
		t.Fatalf("CompleteLevel() failed: %v", err)
	}
	// A worse replay must not lower the record
	if err := store.CompleteLevel(1, 1, 1200); err != nil {
		t.Fatalf("CompleteLevel() failed: %v", err)
	}
	if err := store.CompleteLevel(2, 3, 5000); err != nil {
		t.Fatalf("CompleteLevel() failed: %v", err)
	}

	progress, err := store.CompletedLevels()
	if err != nil {
		t.Fatalf("CompletedLevels() failed: %v", err)
	}
	if len(progress) != 2 {
		t.Fatalf("Expected 2 completed levels, got %d", len(progress))
	}
	if p := progress[1]; p.Stars != 2 || p.BestScore != 1800 {
		t.Errorf("Level 1 progress = %+v, expected 2 stars and 1800", p)
	}
	if p := progress[2]; p.Stars != 3 || p.BestScore != 5000 {
		t.Errorf("Level 2 progress = %+v, expected 3 stars and 5000", p)
	}

	if err := store.CompleteLevel(0, 1, 10); err == nil {
		t.Error("CompleteLevel(0) should fail")
	}
}

func TestStoreLevelUnlocked(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	tests := []struct {
		level int
		want  bool
	}{
		{0, false},
		{1, true},
		{2, false},
	}
	for _, tc := range tests {
		got, err := store.LevelUnlocked(tc.level)
		if err != nil {
			t.Fatalf("LevelUnlocked(%d) failed: %v", tc.level, err)
		}
		if got != tc.want {
			t.Errorf("LevelUnlocked(%d) = %v, expected %v", tc.level, got, tc.want)
		}
	}

	if err := store.CompleteLevel(1, 1, 100); err != nil {
		t.Fatalf("CompleteLevel() failed: %v", err)
	}

	if ok, _ := store.LevelUnlocked(2); !ok {
		t.Error("Level 2 should unlock after level 1 is completed")
	}
	if ok, _ := store.LevelUnlocked(3); ok {
		t.Error("Level 3 should stay locked")
	}

	progress, _ := store.CompletedLevels()
	if !Unlocked(progress, 2) || Unlocked(progress, 3) {
		t.Error("Unlocked() should agree with LevelUnlocked()")
	}
}

func TestStoreGameStats(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	stats, err := store.GetGameStats("candy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Empty stats = %+v", stats)
	}

	store.SaveScore("candy", 100)
	store.SaveScore("candy", 300)

	stats, err = store.GetGameStats("candy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 || stats.AvgScore != 200 {
		t.Errorf("Stats = %+v, expected 2 games, high 300, total 400, avg 200", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}
