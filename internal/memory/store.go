// Package memory implements an in-process key-value backend. Nothing survives
// Detach; it backs tests and the --backend memory CLI mode.
package memory

import (
	"fmt"
	"sync"

	"github.com/mesh-intelligence/itinerary/pkg/types"
)

// Compile-time interface check: Store must implement types.Store.
var _ types.Store = (*Store)(nil)

// Store implements types.Store with a map.
type Store struct {
	mu       sync.RWMutex
	attached bool
	data     map[string][]byte
}

// New creates a detached, empty memory store.
func New() *Store {
	return &Store{}
}

// NewAttached returns an empty store that is already attached.
func NewAttached() *Store {
	return &Store{attached: true, data: make(map[string][]byte)}
}

// Attach starts an empty store.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}
	s.data = make(map[string][]byte)
	s.attached = true
	return nil
}

// Detach drops all data. Idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attached = false
	s.data = nil
	return nil
}

// Get returns a copy of the value under key.
func (s *Store) Get(key string) ([]byte, error) {
	if !types.ValidKey(key) {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidKey, key)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	v, ok := s.data[key]
	if !ok {
		return nil, fmt.Errorf("key %s: %w", key, types.ErrNotFound)
	}
	return append([]byte(nil), v...), nil
}

// Set stores a copy of value under key.
func (s *Store) Set(key string, value []byte) error {
	if !types.ValidKey(key) {
		return fmt.Errorf("%w: %q", types.ErrInvalidKey, key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	s.data[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes key.
func (s *Store) Delete(key string) error {
	if !types.ValidKey(key) {
		return fmt.Errorf("%w: %q", types.ErrInvalidKey, key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	delete(s.data, key)
	return nil
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
