// Package cache persists the full document as a JSON file under a fixed
// path. It is the first source of truth on cold start: reads and writes
// are synchronous, and a write happens on every state transition
// regardless of how remote synchronization fares.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"github.com/strata-app/strata/types"
)

const (
	lockTimeout    = 3 * time.Second
	lockRetryDelay = 100 * time.Millisecond
)

// Store is a whole-document JSON file store. It is safe for concurrent
// use within a process and uses an advisory file lock against other
// processes sharing the same cache file.
type Store struct {
	filePath string
	fileLock *flock.Flock
	mu       sync.Mutex
}

// New creates a store backed by the JSON file at filePath. The file is
// created lazily on the first Write.
func New(filePath string) *Store {
	return &Store{
		filePath: filePath,
		fileLock: flock.New(filePath + ".lock"),
	}
}

// Path returns the cache file path.
func (s *Store) Path() string {
	return s.filePath
}

// Read loads the cached document. The second return value is false when
// no document has been cached yet (missing or empty file).
func (s *Store) Read() (types.Document, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.acquireLock()
	if err != nil {
		return types.Document{}, false, err
	}
	defer unlock()

	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		return types.Document{}, false, nil
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return types.Document{}, false, fmt.Errorf("failed to read cache file: %w", err)
	}
	if len(data) == 0 {
		return types.Document{}, false, nil
	}

	var doc types.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return types.Document{}, false, fmt.Errorf("failed to parse cache file: %w", err)
	}
	return doc, true, nil
}

// Write persists the document, replacing any previous snapshot. The
// write is atomic: data lands in a temp file which is renamed over the
// cache file.
func (s *Store) Write(doc types.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.acquireLock()
	if err != nil {
		return err
	}
	defer unlock()

	if dir := filepath.Dir(s.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	tmpFile := s.filePath + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpFile, s.filePath); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("failed to rename cache file: %w", err)
	}
	return nil
}

// Close removes the lock file.
func (s *Store) Close() error {
	_ = os.Remove(s.filePath + ".lock")
	return nil
}

func (s *Store) acquireLock() (func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := s.fileLock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("could not acquire file lock")
	}
	return func() { _ = s.fileLock.Unlock() }, nil
}
