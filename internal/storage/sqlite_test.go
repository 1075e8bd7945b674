package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieveRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveRun(Run{Variant: "deluxe", Score: score, Level: 2}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun(Run{Variant: "classic", Score: 500}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns("deluxe", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	for i, want := range []int{200, 100, 50} {
		if runs[i].Score != want {
			t.Errorf("Run %d score = %d, expected %d", i, runs[i].Score, want)
		}
	}
	if runs[0].Profile != DefaultProfile {
		t.Errorf("Profile = %q, expected %q", runs[0].Profile, DefaultProfile)
	}
	if runs[0].ID == "" {
		t.Error("Run ID should be generated")
	}

	all, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(all) != 4 || all[0].Score != 500 {
		t.Errorf("Expected 4 runs led by 500, got %d runs", len(all))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveRun(Run{Variant: "classic", Score: i * 10})
	}

	runs, err := store.TopRuns("classic", 5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(runs))
	}
	if runs[0].Score != 190 {
		t.Errorf("Expected top score 190, got %d", runs[0].Score)
	}

	runs, _ = store.TopRuns("classic", 0)
	if len(runs) != 10 {
		t.Errorf("Non-positive limit should default to 10, got %d", len(runs))
	}
}

func TestStoreRunRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ended := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	id, err := store.SaveRun(Run{
		ID: "run-1", Profile: "alice", Variant: "boss-rush",
		Score: 42, Level: 9, CoinsEarned: 92, Ticks: 3100, EndedAt: ended,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != "run-1" {
		t.Errorf("SaveRun() id = %q, expected run-1", id)
	}

	r, err := store.RunByID("run-1")
	if err != nil || r == nil {
		t.Fatalf("RunByID() = %v, %v", r, err)
	}
	if r.Profile != "alice" || r.Level != 9 || r.CoinsEarned != 92 || r.Ticks != 3100 {
		t.Errorf("Run fields not preserved: %+v", r)
	}
	if !r.EndedAt.Equal(ended) {
		t.Errorf("EndedAt = %v, expected %v", r.EndedAt, ended)
	}

	missing, err := store.RunByID("nope")
	if err != nil || missing != nil {
		t.Errorf("Unknown run should be nil without error, got %v, %v", missing, err)
	}
}

func TestStoreHighScoreAndCount(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for an empty history, got %d", high)
	}

	store.SaveRun(Run{Profile: "bob", Variant: "classic", Score: 7})
	store.SaveRun(Run{Profile: "bob", Variant: "classic", Score: 31})
	store.SaveRun(Run{Profile: "eve", Variant: "classic", Score: 12})

	if high, _ = store.HighScore("classic"); high != 31 {
		t.Errorf("HighScore() = %d, expected 31", high)
	}
	if n, _ := store.RunCount("bob"); n != 2 {
		t.Errorf("RunCount(bob) = %d, expected 2", n)
	}
	if n, _ := store.RunCount("nobody"); n != 0 {
		t.Errorf("RunCount(nobody) = %d, expected 0", n)
	}
}

func TestStoreVariantStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Variant: "classic", Score: 10})
	store.SaveRun(Run{Variant: "classic", Score: 30})
	store.SaveRun(Run{Variant: "deluxe", Score: 5})

	stats, err := store.VariantStats()
	if err != nil {
		t.Fatalf("VariantStats() failed: %v", err)
	}
	classic, ok := stats["classic"]
	if !ok {
		t.Fatal("Expected stats for classic")
	}
	if classic.Runs != 2 || classic.HighScore != 30 || classic.AvgScore != 20 {
		t.Errorf("Classic stats = %+v", classic)
	}
	if classic.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
	if stats["deluxe"].Runs != 1 {
		t.Errorf("Deluxe runs = %d, expected 1", stats["deluxe"].Runs)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Variant: "classic", Score: 100})
	store.SaveRun(Run{Variant: "deluxe", Score: 200})

	if err := store.ClearRuns("classic"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if runs, _ := store.TopRuns("classic", 10); len(runs) != 0 {
		t.Errorf("Expected 0 classic runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("deluxe", 10); len(runs) != 1 {
		t.Errorf("Deluxe runs should survive, got %d", len(runs))
	}

	store.ClearRuns("")
	if runs, _ := store.TopRuns("", 10); len(runs) != 0 {
		t.Errorf("Expected an empty history, got %d", len(runs))
	}
}

func TestStoreWardrobe(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.LoadWardrobe("alice")
	if err != nil {
		t.Fatalf("LoadWardrobe() failed: %v", err)
	}
	if len(empty.Owned) != 0 || empty.Equipped != 0 {
		t.Errorf("New profile wardrobe = %+v, expected empty", empty)
	}

	if err := store.SaveWardrobe("alice", Wardrobe{Owned: []int{0, 2}, Equipped: 2}); err != nil {
		t.Fatalf("SaveWardrobe() failed: %v", err)
	}
	if err := store.SaveWardrobe("bob", Wardrobe{Owned: []int{0, 1}, Equipped: 1}); err != nil {
		t.Fatalf("SaveWardrobe() failed: %v", err)
	}

	w, _ := store.LoadWardrobe("alice")
	if len(w.Owned) != 2 || w.Owned[1] != 2 || w.Equipped != 2 {
		t.Errorf("Alice wardrobe = %+v", w)
	}

	// Saving again replaces rather than merges
	store.SaveWardrobe("alice", Wardrobe{Owned: []int{0, 3}, Equipped: 0})
	w, _ = store.LoadWardrobe("alice")
	if len(w.Owned) != 2 || w.Owned[1] != 3 || w.Equipped != 0 {
		t.Errorf("Replaced wardrobe = %+v", w)
	}

	if b, _ := store.LoadWardrobe("bob"); b.Equipped != 1 {
		t.Errorf("Bob's wardrobe should be untouched, got %+v", b)
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store1.SaveRun(Run{Variant: "classic", Score: 999})
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store2.Close()

	if high, _ := store2.HighScore("classic"); high != 999 {
		t.Errorf("Expected persisted score 999, got %d", high)
	}
}
