// Package registry maps ids to live instances for lookup by id.
package registry

import "sync"

// Registry is safe for concurrent use. Entries are never removed; their
// lifetime belongs to the host process.
type Registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// New returns an empty registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{items: make(map[string]T)}
}

// Register stores v under id, replacing any earlier instance.
func (r *Registry[T]) Register(id string, v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.items == nil {
		r.items = make(map[string]T)
	}
	r.items[id] = v
}

// Resolve returns the instance registered under id.
func (r *Registry[T]) Resolve(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[id]
	return v, ok
}

// Len reports how many ids are registered.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
