package form

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	saved := Draft{
		"reporterName":   "สมชาย",
		"phoneNumber":    "0812345678",
		"propertyDamage": "1500",
		"helpTypes":      []string{"food"}, // non-primitive, dropped on load
	}
	if err := store.Save("damagereport", saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load("damagereport")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded["reporterName"] != "สมชาย" || loaded["phoneNumber"] != "0812345678" {
		t.Errorf("Load: primitive fields did not round trip: %v", loaded)
	}
	if _, ok := loaded["helpTypes"]; ok {
		t.Errorf("Load: non-primitive field survived sanitization: %v", loaded)
	}
}

func TestFileStoreAbsentAndCleared(t *testing.T) {
	store, _ := NewFileStore(t.TempDir())

	if d, err := store.Load("floodreport"); err != nil || d != nil {
		t.Errorf("Load of absent key: expected nil, nil; got %v, %v", d, err)
	}

	store.Save("floodreport", Draft{"address": "12 Riverside Rd"})
	if err := store.Clear("floodreport"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if d, _ := store.Load("floodreport"); d != nil {
		t.Errorf("Load after Clear: expected nil, got %v", d)
	}
	// Clearing again is fine.
	if err := store.Clear("floodreport"); err != nil {
		t.Errorf("Clear of absent key: %v", err)
	}
}

func TestFileStoreCorruptEntry(t *testing.T) {
	dir := t.TempDir()
	store, _ := NewFileStore(dir)

	os.WriteFile(filepath.Join(dir, "helprequest.json"), []byte("{not json"), 0o644)

	d, err := store.Load("helprequest")
	if err != nil || d != nil {
		t.Errorf("Load of corrupt entry: expected nil, nil; got %v, %v", d, err)
	}
}

func TestMemoryStoreSanitizesOnLoad(t *testing.T) {
	store := NewMemoryStore()
	store.Save("floodreport", Draft{
		"reporterName": "Somchai",
		"nested":       map[string]any{"a": 1},
		"flag":         true,
	})

	loaded, _ := store.Load("floodreport")
	if len(loaded) != 1 || loaded["reporterName"] != "Somchai" {
		t.Errorf("Load: expected only primitive fields, got %v", loaded)
	}
}
