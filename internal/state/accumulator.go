package state

import (
	"context"
	"sync"
)

// Accumulator is an add-only set of key/value entries per scope. Adding a
// key that already exists keeps the first value.
type Accumulator interface {
	Add(ctx context.Context, scope, key, value string) (added bool, err error)
	Entries(ctx context.Context, scope string) (map[string]string, error)
}

type MemoryAccumulator struct {
	mu      sync.RWMutex
	entries map[string]map[string]string
}

func NewMemoryAccumulator() *MemoryAccumulator {
	return &MemoryAccumulator{entries: make(map[string]map[string]string)}
}

func (m *MemoryAccumulator) Add(_ context.Context, scope, key, value string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	set, ok := m.entries[scope]
	if !ok {
		set = make(map[string]string)
		m.entries[scope] = set
	}
	if _, exists := set[key]; exists {
		return false, nil
	}
	set[key] = value
	return true, nil
}

func (m *MemoryAccumulator) Entries(_ context.Context, scope string) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]string, len(m.entries[scope]))
	for k, v := range m.entries[scope] {
		out[k] = v
	}
	return out, nil
}
