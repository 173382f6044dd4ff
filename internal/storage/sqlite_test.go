package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/leap-of-faith/internal/core"
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

func saveRun(t *testing.T, s *Store, hero string, floors, ticks int, won bool) int64 {
	t.Helper()
	cause := "ceiling"
	if won {
		cause = "bottom"
	}
	id, err := s.SaveRun(RunRecord{
		Hero:   hero,
		Level:  100 - floors,
		Floors: floors,
		Won:    won,
		Cause:  cause,
		Ticks:  ticks,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id := saveRun(t, store, "ninjafrog", 100, 12000, true)
	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run.Hero != "ninjafrog" || run.Floors != 100 || run.Level != 0 || !run.Won || run.Cause != "bottom" || run.Ticks != 12000 {
		t.Errorf("RunByID() = %+v", run)
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	if _, err := store.RunByID(id + 100); !errors.Is(err, ErrNotFound) {
		t.Errorf("RunByID(missing) error = %v, expected ErrNotFound", err)
	}
}

func TestStoreTopRunsOrder(t *testing.T) {
	store := openTestStore(t)

	saveRun(t, store, "maskdude", 10, 900, false)
	saveRun(t, store, "pinkman", 30, 5000, false)
	saveRun(t, store, "ninjafrog", 30, 4000, false)
	saveRun(t, store, "maskdude", 5, 300, false)

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 4 {
		t.Fatalf("Expected 4 runs, got %d", len(runs))
	}

	// Most floors first, then the faster run
	want := []struct {
		hero   string
		floors int
	}{
		{"ninjafrog", 30},
		{"pinkman", 30},
		{"maskdude", 10},
		{"maskdude", 5},
	}
	for i, w := range want {
		if runs[i].Hero != w.hero || runs[i].Floors != w.floors {
			t.Errorf("runs[%d] = %s/%d, expected %s/%d", i, runs[i].Hero, runs[i].Floors, w.hero, w.floors)
		}
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		saveRun(t, store, "maskdude", (i+1)*10, 1000, false)
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Floors != 50 || runs[1].Floors != 40 || runs[2].Floors != 30 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	first := saveRun(t, store, "maskdude", 50, 1000, false)
	last := saveRun(t, store, "pinkman", 1, 100, false)

	runs, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != last || runs[1].ID != first {
		t.Errorf("RecentRuns() = %v, expected newest first", runs)
	}
}

func TestStoreBestFloors(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestFloors("")
	if err != nil {
		t.Fatalf("BestFloors() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for an empty store, got %d", best)
	}

	saveRun(t, store, "maskdude", 12, 1000, false)
	saveRun(t, store, "pinkman", 40, 1000, false)
	saveRun(t, store, "maskdude", 25, 1000, false)

	tests := []struct {
		hero string
		want int
	}{
		{"", 40},
		{"maskdude", 25},
		{"pinkman", 40},
		{"ninjafrog", 0},
	}
	for _, tt := range tests {
		got, err := store.BestFloors(tt.hero)
		if err != nil {
			t.Fatalf("BestFloors(%q) failed: %v", tt.hero, err)
		}
		if got != tt.want {
			t.Errorf("BestFloors(%q) = %d, expected %d", tt.hero, got, tt.want)
		}
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.BestFloors != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats() on empty store = %+v", empty)
	}

	saveRun(t, store, "maskdude", 10, 100, false)
	saveRun(t, store, "maskdude", 100, 300, true)
	saveRun(t, store, "pinkman", 40, 200, false)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Wins != 1 || stats.BestFloors != 100 || stats.TotalTicks != 600 {
		t.Errorf("Stats() = %+v", stats)
	}
	if stats.AvgFloors != 50 {
		t.Errorf("AvgFloors = %v, expected 50", stats.AvgFloors)
	}

	heroes, err := store.HeroStats()
	if err != nil {
		t.Fatalf("HeroStats() failed: %v", err)
	}
	if len(heroes) != 2 {
		t.Fatalf("Expected 2 heroes, got %d", len(heroes))
	}
	if md := heroes["maskdude"]; md == nil || md.Runs != 2 || md.Wins != 1 || md.BestFloors != 100 {
		t.Errorf("maskdude stats = %+v", md)
	}
	if pm := heroes["pinkman"]; pm == nil || pm.Runs != 1 || pm.Wins != 0 {
		t.Errorf("pinkman stats = %+v", pm)
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	saveRun(t, store, "maskdude", 10, 100, false)
	saveRun(t, store, "pinkman", 20, 100, false)

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestRecordFromSummary(t *testing.T) {
	r := RecordFromSummary(core.RunSummary{
		Hero:   "pinkman",
		Level:  63,
		Floors: 37,
		Cause:  "health",
		Ticks:  4321,
	}, 99)
	if r.Hero != "pinkman" || r.Level != 63 || r.Floors != 37 || r.Won || r.Cause != "health" || r.Ticks != 4321 || r.Seed != 99 {
		t.Errorf("RecordFromSummary() = %+v", r)
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
