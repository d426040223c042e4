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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
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

func TestStoreSaveClear(t *testing.T) {
	store := openTemp(t)

	id, err := store.SaveClear(0, "Meadow", 900, 42)
	if err != nil {
		t.Fatalf("SaveClear() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	clears, err := store.LevelClears(0)
	if err != nil {
		t.Fatalf("LevelClears() failed: %v", err)
	}
	if len(clears) != 1 {
		t.Fatalf("Expected 1 clear, got %d", len(clears))
	}

	c := clears[0]
	if c.Title != "Meadow" || c.Ticks != 900 || c.Seed != 42 {
		t.Errorf("Unexpected clear: %+v", c)
	}
	if c.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
}

func TestStoreSaveClearRejectsInvalid(t *testing.T) {
	store := openTemp(t)

	tests := []struct {
		name         string
		level, ticks int
	}{
		{"negative level", -1, 10},
		{"negative ticks", 0, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.SaveClear(tt.level, "x", tt.ticks, 0); err == nil {
				t.Error("Expected error for invalid clear")
			}
		})
	}
}

func TestStoreBestClears(t *testing.T) {
	store := openTemp(t)

	store.SaveClear(0, "Meadow", 900, 1)
	store.SaveClear(0, "Meadow", 600, 2)
	store.SaveClear(0, "Meadow", 750, 3)
	store.SaveClear(2, "Maze", 1200, 4)

	best, err := store.BestClears()
	if err != nil {
		t.Fatalf("BestClears() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("Expected 2 levels, got %d", len(best))
	}

	if best[0].Level != 0 || best[0].Ticks != 600 || best[0].Seed != 2 {
		t.Errorf("Unexpected best clear for level 0: %+v", best[0])
	}
	if best[1].Level != 2 || best[1].Ticks != 1200 {
		t.Errorf("Unexpected best clear for level 2: %+v", best[1])
	}
}

func TestStoreRecentClearsLimit(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 5; i++ {
		store.SaveClear(i, "level", (i+1)*100, 0)
	}

	recent, err := store.RecentClears(3)
	if err != nil {
		t.Fatalf("RecentClears() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 clears with limit, got %d", len(recent))
	}

	// Newest first: levels 4, 3, 2
	if recent[0].Level != 4 || recent[1].Level != 3 || recent[2].Level != 2 {
		t.Errorf("Clears not in expected order: %v", recent)
	}
}

func TestStoreBestTicks(t *testing.T) {
	store := openTemp(t)

	best, err := store.BestTicks(1)
	if err != nil {
		t.Fatalf("BestTicks() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for uncleared level, got %d", best)
	}

	store.SaveClear(1, "Toggles", 500, 0)
	store.SaveClear(1, "Toggles", 300, 0)
	store.SaveClear(1, "Toggles", 400, 0)

	best, err = store.BestTicks(1)
	if err != nil {
		t.Fatalf("BestTicks() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best of 300, got %d", best)
	}
}

func TestStoreResetClears(t *testing.T) {
	store := openTemp(t)

	store.SaveClear(0, "Meadow", 100, 0)
	store.SaveClear(1, "Toggles", 200, 0)

	if err := store.ResetClears(); err != nil {
		t.Fatalf("ResetClears() failed: %v", err)
	}

	recent, _ := store.RecentClears(10)
	if len(recent) != 0 {
		t.Errorf("Expected no clears after reset, got %d", len(recent))
	}
}

func TestStoreClearHook(t *testing.T) {
	store := openTemp(t)

	var errs []error
	hook := store.ClearHook(99, func(level int) string { return "Level" }, func(err error) { errs = append(errs, err) })
	hook(3, 450)
	hook(-1, 10)

	clears, err := store.LevelClears(3)
	if err != nil {
		t.Fatalf("LevelClears() failed: %v", err)
	}
	if len(clears) != 1 || clears[0].Title != "Level" || clears[0].Seed != 99 || clears[0].Ticks != 450 {
		t.Errorf("Unexpected clears: %+v", clears)
	}
	if len(errs) != 1 {
		t.Errorf("Expected 1 reported error, got %d", len(errs))
	}

	var nilStore *Store
	if nilStore.ClearHook(0, nil, nil) != nil {
		t.Error("Expected nil hook from nil store")
	}
}
