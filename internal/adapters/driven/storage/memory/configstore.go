// Package memory provides in-memory adapters. They are used in tests and as
// a fallback when no configuration directory is writable, in which case
// configuration comes from the environment alone.
package memory

import (
	"sync"

	"github.com/spf13/cast"

	"github.com/custodia-labs/sercha-assist/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is an in-memory implementation of driven.ConfigStore.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore creates a new in-memory config store, optionally seeded.
func NewConfigStore(seed ...map[string]any) *ConfigStore {
	values := make(map[string]any)
	for _, m := range seed {
		for k, v := range m {
			values[k] = v
		}
	}
	return &ConfigStore{values: values}
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

// GetString retrieves a value as a string. Numbers are formatted.
func (s *ConfigStore) GetString(key string) string {
	return cast.ToString(s.lookup(key))
}

// GetInt retrieves a value as an integer. Numeric strings are parsed;
// anything else yields 0.
func (s *ConfigStore) GetInt(key string) int {
	return cast.ToInt(s.lookup(key))
}

// GetFloat retrieves a value as a float. Numeric strings are parsed;
// anything else yields 0.
func (s *ConfigStore) GetFloat(key string) float64 {
	return cast.ToFloat64(s.lookup(key))
}

// Set stores a configuration value.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return ":memory:"
}

func (s *ConfigStore) lookup(key string) any {
	val, _ := s.Get(key)
	return val
}
