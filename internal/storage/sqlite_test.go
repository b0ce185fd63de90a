package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/colorx/internal/converter"
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

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	records := []Conversion{
		{Input: "#fff", Source: "hex", Target: "rgba", Output: "rgba(255, 255, 255, 1)"},
		{Input: "rgb(255, 0, 128)", Source: "rgba", Target: "hex", Output: "#ff0080ff"},
		{Input: "%1,0,0.5,1", Source: "percent", Target: "hex", Output: "#ff0080ff"},
	}
	for _, r := range records {
		if _, err := store.SaveConversion(r); err != nil {
			t.Fatalf("SaveConversion() failed: %v", err)
		}
	}

	recent, err := store.RecentConversions(10)
	if err != nil {
		t.Fatalf("RecentConversions() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 conversions, got %d", len(recent))
	}

	// Newest first
	if recent[0].Input != "%1,0,0.5,1" {
		t.Errorf("Expected newest input %q, got %q", "%1,0,0.5,1", recent[0].Input)
	}
	if recent[2].Output != "rgba(255, 255, 255, 1)" {
		t.Errorf("Expected oldest output %q, got %q", "rgba(255, 255, 255, 1)", recent[2].Output)
	}
	if recent[0].CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveConversion(Conversion{Input: "#000", Source: "hex", Target: "hex", Output: "#000000ff"})
	}

	recent, err := store.RecentConversions(3)
	if err != nil {
		t.Fatalf("RecentConversions() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Errorf("Expected 3 conversions with limit, got %d", len(recent))
	}
	if recent[0].ID <= recent[1].ID {
		t.Errorf("Conversions not newest first: %d before %d", recent[0].ID, recent[1].ID)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveConversion(Conversion{Input: "#fff", Source: "hex", Target: "rgba", Output: "x"})
	store.SaveConversion(Conversion{Input: "#000", Source: "hex", Target: "rgba", Output: "x"})
	store.SaveConversion(Conversion{Input: "%0,0,0,1", Source: "percent", Target: "hex", Output: "x"})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected 2 notation pairs, got %d", len(stats))
	}
	if stats[0].Source != "hex" || stats[0].Target != "rgba" || stats[0].Count != 2 {
		t.Errorf("Unexpected top pair: %+v", stats[0])
	}
	if stats[1].Count != 1 {
		t.Errorf("Expected second pair count 1, got %d", stats[1].Count)
	}
}

func TestStoreClearHistory(t *testing.T) {
	store := openTestStore(t)

	store.SaveConversion(Conversion{Input: "#fff", Source: "hex", Target: "hex", Output: "#ffffffff"})
	store.SaveConversion(Conversion{Input: "#000", Source: "hex", Target: "hex", Output: "#000000ff"})

	if err := store.ClearHistory(); err != nil {
		t.Fatalf("ClearHistory() failed: %v", err)
	}

	n, err := store.Count()
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected 0 conversions after clear, got %d", n)
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

func TestStoreRecordConversion(t *testing.T) {
	store := openTestStore(t)

	err := store.RecordConversion(converter.Record{Input: "#fff", Source: "hex", Target: "percent", Output: "% 1, 1, 1, 1"})
	if err != nil {
		t.Fatalf("RecordConversion() failed: %v", err)
	}

	recent, err := store.RecentConversions(1)
	if err != nil {
		t.Fatalf("RecentConversions() failed: %v", err)
	}
	if len(recent) != 1 || recent[0].Target != "percent" {
		t.Errorf("Unexpected history: %+v", recent)
	}
}
