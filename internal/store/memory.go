// internal/store/memory.go
//
// In-memory Store used for live sessions. State is lost when the process
// restarts; sessions are not meant to outlive it.
//
// Characteristics:
//   - Values keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Get and Delete return ErrNotFound for unknown IDs.

package store

import (
	"context"
	"errors"
	"sort"
	"sync"
)

var ErrNotFound = errors.New("not found")

// Store defines the persistence interface for sessions.
type Store[T any] interface {
	// Save persists or replaces the value under id.
	Save(ctx context.Context, id string, v T) error

	// Get retrieves a value by id.
	Get(ctx context.Context, id string) (T, error)

	// Delete removes id and returns the removed value.
	Delete(ctx context.Context, id string) (T, error)

	// List returns every value ordered by id.
	List(ctx context.Context) ([]T, error)
}

type memory[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

func NewMemoryStore[T any]() Store[T] {
	return &memory[T]{items: make(map[string]T)}
}

func (m *memory[T]) Save(ctx context.Context, id string, v T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[id] = v
	return nil
}

func (m *memory[T]) Get(ctx context.Context, id string) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.items[id]; ok {
		return v, nil
	}
	var zero T
	return zero, ErrNotFound
}

func (m *memory[T]) Delete(ctx context.Context, id string) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	delete(m.items, id)
	return v, nil
}

func (m *memory[T]) List(ctx context.Context) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.items))
	for id := range m.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]T, len(ids))
	for i, id := range ids {
		out[i] = m.items[id]
	}
	return out, nil
}
