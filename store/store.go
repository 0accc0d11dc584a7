// Package store persists one collection of records as a single JSON file.
//
// Writes go to a temporary file that is renamed over the real one, so a
// reader never sees a half-written collection. Every logical operation on a
// collection (read-modify-write or plain read) runs under that collection's
// mutex; without it two concurrent saves can hand out the same id or drop
// each other's changes.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// ErrCorrupt marks a collection file whose content exists but does not
// decode as the expected record list.
var ErrCorrupt = errors.New("corrupt collection file")

// Identified is implemented by records carrying an integer id.
type Identified interface {
	RecordID() int
}

// NextID returns max existing id + 1, or 1 for an empty collection.
func NextID[T Identified](records []T) int {
	next := 1
	for _, r := range records {
		if id := r.RecordID(); id >= next {
			next = id + 1
		}
	}
	return next
}

// Store binds one record type to one file path.
type Store[T any] struct {
	path string
	mu   sync.Mutex
}

func New[T any](path string) *Store[T] {
	return &Store[T]{path: path}
}

// Load returns the current collection. A missing file is an empty
// collection, not an error.
func (s *Store[T]) Load() ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Update runs fn inside the collection's exclusion region: the current
// records are loaded, fn produces the replacement collection, and the result
// is written back atomically. An error from fn aborts without writing.
func (s *Store[T]) Update(fn func(records []T) ([]T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}
	updated, err := fn(records)
	if err != nil {
		return err
	}
	return s.save(updated)
}

// View runs fn with the current records under the collection mutex, so reads
// are ordered with concurrent updates. fn must not retain the slice.
func (s *Store[T]) View(fn func(records []T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}
	return fn(records)
}

func (s *Store[T]) load() ([]T, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []T
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	return records, nil
}

func (s *Store[T]) save(records []T) error {
	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	// Atomic replace: a concurrent reader sees either the old file or the
	// new one, never a partial write.
	return os.Rename(tmp, s.path)
}
