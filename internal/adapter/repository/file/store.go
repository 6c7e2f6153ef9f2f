// Package file implements the persistence ports over a flat key-value blob
// store on disk. Each key maps to one JSON file in the data directory and is
// overwritten in full on every write — no partial updates, no transactions.
package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store is a key-value blob store backed by one JSON file per key.
//
// Thread-safety: all operations are protected by a mutex. The store assumes
// it is the only writer to its directory (single-process application).
type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore creates a blob store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// DefaultDir returns the default data directory:
// <user config dir>/mussick
func DefaultDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting user config dir: %w", err)
	}
	return filepath.Join(configDir, "mussick"), nil
}

// Write marshals v and overwrites the blob for key.
func (s *Store) Write(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}

	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing %s: %w", key, err)
	}

	return nil
}

// Read unmarshals the blob for key into v.
// A missing blob is not an error: v is left untouched and ok is false.
func (s *Store) Read(key string, v any) (ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("reading %s: %w", key, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parsing %s: %w", key, err)
	}

	return true, nil
}

// Delete removes the blob for key. Missing blobs are a no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", key, err)
	}
	return nil
}

// path maps a key to its file under the data directory.
func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
