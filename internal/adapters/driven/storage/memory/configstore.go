package memory

import (
	"maps"
	"sync"

	"github.com/custodia-labs/astrolabe/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore keeps settings in a map for the life of the process.
// It is used when ~/.astrolabe cannot be created, and in tests.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore returns an empty store. Optional seed values are copied in.
func NewConfigStore(seed ...map[string]any) *ConfigStore {
	s := &ConfigStore{values: make(map[string]any)}
	for _, m := range seed {
		maps.Copy(s.values, m)
	}
	return s
}

func (s *ConfigStore) Lookup(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
	return nil
}

func (s *ConfigStore) Unset(key string) error {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()
	return nil
}

// Reload is a no-op: there is nothing behind the map to re-read.
func (s *ConfigStore) Reload() error { return nil }

// Path reports ":memory:".
func (s *ConfigStore) Path() string { return ":memory:" }
