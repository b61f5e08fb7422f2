// Package memory provides a KeyValueStore that lives only in process memory
package memory

import (
	"errors"
	"maps"
	"slices"
	"sync"

	"simplenotes/internal/ports"
)

// ErrClosed is returned by operations on a closed store
var ErrClosed = errors.New("memory store closed")

// Store is a map-backed KeyValueStore. Values are copied in and out.
type Store struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed bool

	// FailWrites makes Set and Delete fail with the given error
	FailWrites error
}

var _ ports.KeyValueStore = (*Store)(nil)

// New creates an empty store
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

// NewWith creates a store pre-populated with string values
func NewWith(values map[string]string) *Store {
	s := New()
	for k, v := range values {
		s.data[k] = []byte(v)
	}
	return s
}

func (s *Store) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, false, ErrClosed
	}
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(v), true, nil
}

func (s *Store) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.FailWrites != nil {
		return s.FailWrites
	}
	s.data[key] = slices.Clone(value)
	return nil
}

func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.FailWrites != nil {
		return s.FailWrites
	}
	delete(s.data, key)
	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Keys returns the stored keys in sorted order
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.data))
}

// String returns a stored value as a string, or "" when absent
func (s *Store) String(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return string(s.data[key])
}
