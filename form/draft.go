// Package form implements the client side of the reporting flow: draft
// persistence, step-scoped validation, the multi-step form controller and
// the submission client.
package form

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/apex/log"
)

// Draft is a partial snapshot of the fields of one in-progress report form.
type Draft map[string]any

func (d Draft) Clone() Draft {
	c := make(Draft, len(d))
	for k, v := range d {
		c[k] = v
	}
	return c
}

// Store persists drafts keyed per form. Save overwrites the full snapshot,
// last write wins. Load returns a sanitized draft, or nil when nothing
// usable is stored under the key.
type Store interface {
	Save(key string, d Draft) error
	Load(key string) (Draft, error)
	Clear(key string) error
}

// Sanitize keeps only primitive field values. Anything else may come from a
// stale or corrupted entry written by an older schema and is dropped.
func Sanitize(d Draft) Draft {
	out := Draft{}
	for k, v := range d {
		switch v.(type) {
		case string, float64, int, int64:
			out[k] = v
		}
	}
	return out
}

// MemoryStore is the in-memory backing used in tests.
type MemoryStore struct {
	mu     sync.Mutex
	drafts map[string]Draft
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{drafts: map[string]Draft{}}
}

func (s *MemoryStore) Save(key string, d Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[key] = d.Clone()
	return nil
}

func (s *MemoryStore) Load(key string) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[key]
	if !ok {
		return nil, nil
	}
	return Sanitize(d), nil
}

func (s *MemoryStore) Clear(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, key)
	return nil
}

// FileStore is the durable backing: one JSON file per form key under a
// state directory, surviving restarts of the client.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Save(key string, d Draft) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(key), b, 0o644)
}

func (s *FileStore) Load(key string) (Draft, error) {
	b, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var d Draft
	if err := json.Unmarshal(b, &d); err != nil {
		// A corrupt draft is treated as no draft at all.
		log.Warnf("Dropping corrupt draft %s: %v", key, err)
		return nil, nil
	}
	return Sanitize(d), nil
}

func (s *FileStore) Clear(key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
