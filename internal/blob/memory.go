package blob

import (
	"context"
	"sync"
)

type MemoryStore struct {
	mu     sync.RWMutex
	items  map[string][]byte
	writes int
}

func NewMemory() *MemoryStore {
	return &MemoryStore{items: make(map[string][]byte)}
}

func (m *MemoryStore) Read(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.items[key]
	if !ok {
		return nil, ErrNotExist
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MemoryStore) Write(ctx context.Context, key string, data []byte) error {
	buf := make([]byte, len(data))
	copy(buf, data)
	m.mu.Lock()
	m.items[key] = buf
	m.writes++
	m.mu.Unlock()
	return nil
}

// Writes reports how many times Write was called. Tests use it to check that
// no-op operations leave storage untouched.
func (m *MemoryStore) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}
