// internal/daily/marker.go
//
// Persistence for the daily play marker: the last calendar date on which a
// session was started.
//
// Backends:
//   - FileStore:   a small text file holding just the date (default).
//   - SQLStore:    a single-row SQLite table (see store.go).
//   - MemoryStore: process-local, for tests and embedding.
package daily

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// MarkerStore reads and writes the persisted marker.
// Last returns "" when nothing has been recorded yet.
type MarkerStore interface {
	Last(ctx context.Context) (string, error)
	Mark(ctx context.Context, date string) error
}

// Claimer is implemented by stores that can record a date atomically,
// succeeding only if the stored date differs from it.
type Claimer interface {
	Claim(ctx context.Context, date string) (bool, error)
}

// FileStore keeps the marker in a plain text file.
// Reads and writes are not atomic with respect to other processes.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore for path. Nothing is touched on disk yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the marker file location.
func (s *FileStore) Path() string { return s.path }

// Last reads the marker, creating an empty file if it does not exist.
func (s *FileStore) Last(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := ensureDir(s.path); err != nil {
		return "", err
	}
	f, err := os.OpenFile(s.path, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return "", fmt.Errorf("open marker %s: %w", s.path, err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read marker %s: %w", s.path, err)
	}
	return strings.TrimSpace(string(b)), nil
}

// Mark overwrites the marker with date.
func (s *FileStore) Mark(ctx context.Context, date string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ensureDir(s.path); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, []byte(date), 0o644); err != nil {
		return fmt.Errorf("write marker %s: %w", s.path, err)
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// MemoryStore is an in-memory MarkerStore. State is lost on exit.
type MemoryStore struct {
	mu   sync.Mutex // guards date
	date string
}

// NewMemoryStore returns a MemoryStore pre-set to date ("" for none).
func NewMemoryStore(date string) *MemoryStore {
	return &MemoryStore{date: date}
}

func (m *MemoryStore) Last(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.date, nil
}

func (m *MemoryStore) Mark(ctx context.Context, date string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.date = date
	return nil
}

// Claim sets the date unless it is already set to it.
func (m *MemoryStore) Claim(ctx context.Context, date string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.date == date {
		return false, nil
	}
	m.date = date
	return true, nil
}
