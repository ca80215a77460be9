// Package memory implements ports.PrefsStore in process memory.
package memory

import (
	"context"
	"sync"

	"github.com/nexuslabs/showrunner/pkg/domain"
)

// Store implements ports.PrefsStore in memory. Safe for concurrent use.
// Useful for tests and ephemeral demo sessions.
type Store struct {
	data map[string]string
	mu   sync.RWMutex
}

// NewStore creates a new in-memory prefs store.
func NewStore() *Store {
	return &Store{data: make(map[string]string)}
}

// Get retrieves a preference value.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	if !ok {
		return "", domain.ErrPrefNotFound
	}
	return val, nil
}

// Set stores a preference value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Delete removes a preference.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
