// Package file implements ports.PrefsStore on the local filesystem.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/nexuslabs/showrunner/pkg/domain"
)

// Store persists preferences as a single JSON file. This is the default
// durable backend for the CLI host: three keys do not deserve a database.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a file-backed prefs store at the given path.
// If path is empty, it defaults to ".showrunner/prefs.json".
func NewStore(path string) *Store {
	if path == "" {
		path = filepath.Join(".showrunner", "prefs.json")
	}
	return &Store{path: path}
}

func (s *Store) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read prefs file: %w", err)
	}

	prefs := make(map[string]string)
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal prefs: %w", err)
	}
	return prefs, nil
}

func (s *Store) write(prefs map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to ensure prefs directory: %w", err)
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal prefs: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write prefs file: %w", err)
	}
	return nil
}

// Get retrieves a preference value.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.read()
	if err != nil {
		return "", err
	}
	val, ok := prefs[key]
	if !ok {
		return "", domain.ErrPrefNotFound
	}
	return val, nil
}

// Set stores a preference value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.read()
	if err != nil {
		return err
	}
	prefs[key] = value
	return s.write(prefs)
}

// Delete removes a preference.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := prefs[key]; !ok {
		return nil
	}
	delete(prefs, key)
	return s.write(prefs)
}
