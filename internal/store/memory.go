package store

import "sync"

// Memory is an ordered in-memory record collection. It backs the module
// repositories when the service runs in dev mode without a Mongo deployment,
// and doubles as the store stand-in in tests. Listing order is insertion
// order, which keeps tie-breaking deterministic.
type Memory[T any] struct {
	mu  sync.RWMutex
	ids []string
	rec map[string]T
}

// NewMemory returns an empty collection.
func NewMemory[T any]() *Memory[T] {
	return &Memory[T]{rec: make(map[string]T)}
}

// List returns all records in insertion order.
func (m *Memory[T]) List() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, 0, len(m.ids))
	for _, id := range m.ids {
		out = append(out, m.rec[id])
	}
	return out
}

// Get looks up one record by id.
func (m *Memory[T]) Get(id string) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.rec[id]
	return v, ok
}

// Put inserts or replaces a record. Replacing keeps the original position.
func (m *Memory[T]) Put(id string, v T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rec[id]; !ok {
		m.ids = append(m.ids, id)
	}
	m.rec[id] = v
}

// Delete removes a record, reporting whether it existed.
func (m *Memory[T]) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rec[id]; !ok {
		return false
	}
	delete(m.rec, id)
	for i, existing := range m.ids {
		if existing == id {
			m.ids = append(m.ids[:i], m.ids[i+1:]...)
			break
		}
	}
	return true
}
