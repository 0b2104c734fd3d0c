package kv

import "sync"

// Mem is an in-memory Store. It backs tests and --ephemeral mode.
type Mem struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ Store = (*Mem)(nil)

// NewMem creates an empty in-memory store.
func NewMem() *Mem {
	return &Mem{data: make(map[string]string)}
}

func (m *Mem) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Mem) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value
	return nil
}

func (m *Mem) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

// Close is a no-op for the in-memory store.
func (m *Mem) Close() error {
	return nil
}

// Len returns the number of stored keys.
func (m *Mem) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.data)
}
