package storage

import (
	"sync"
)

// Memory is an in-memory Store. It is used in tests and can simulate a
// failing store by setting Err.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string

	// Err is returned by all operations when set.
	Err error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get reads the value for a key.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Err != nil {
		return "", false, m.Err
	}

	value, ok := m.values[key]
	return value, ok, nil
}

// Set writes the value for a key, overwriting any previous value.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	m.values[key] = value
	return nil
}

// Ping verifies that the store can be accessed.
func (m *Memory) Ping() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.Err
}
