package uploads

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, "/uploads")
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	publicPath, err := store.Save(strings.NewReader("jpegdata"), "my house.JPG")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(publicPath, "/uploads/") {
		t.Errorf("Save: public path %q", publicPath)
	}
	if !strings.HasSuffix(publicPath, ".jpg") {
		t.Errorf("Save: extension not kept: %q", publicPath)
	}
	if strings.Contains(publicPath, "my house") {
		t.Errorf("Save: original name leaked into %q", publicPath)
	}

	name := filepath.Base(publicPath)
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil || string(b) != "jpegdata" {
		t.Errorf("stored file: %q, %v", b, err)
	}

	if err := store.Remove(publicPath); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
		t.Error("Remove: file still present")
	}
}

func TestRemoveMissingFile(t *testing.T) {
	store, _ := NewFileStore(t.TempDir(), "/uploads")

	if err := store.Remove("/uploads/gone.jpg"); err != nil {
		t.Errorf("Remove of missing file: %v", err)
	}
	if err := store.Remove(""); err != nil {
		t.Errorf("Remove of empty path: %v", err)
	}
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store, _ := NewFileStore(t.TempDir(), "/uploads")

	a, _ := store.Save(strings.NewReader("a"), "flood.png")
	b, _ := store.Save(strings.NewReader("b"), "flood.png")
	if a == b {
		t.Errorf("Save: identical paths %q for distinct uploads", a)
	}
}
