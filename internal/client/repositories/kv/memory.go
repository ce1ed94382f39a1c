package kv

import (
	"context"
	"sync"
)

// MemoryRepository keeps pairs in a map. It is used by tests and by the
// shell when no database path is configured.
type MemoryRepository struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[string][]byte)}
}

// Ensure interfaces are met.
var _ Repository = (*MemoryRepository)(nil)
var _ Repository = (*SQLiteRepository)(nil)

func (r *MemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (r *MemoryRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[key] = append([]byte(nil), value...)
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, key)
	return nil
}

func (r *MemoryRepository) List(_ context.Context) (map[string][]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make(map[string][]byte, len(r.data))
	for k, v := range r.data {
		result[k] = append([]byte(nil), v...)
	}
	return result, nil
}

func (r *MemoryRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = make(map[string][]byte)
	return nil
}

// Replace swaps the whole store for pairs.
func (r *MemoryRepository) Replace(_ context.Context, pairs map[string][]byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = make(map[string][]byte, len(pairs))
	for k, v := range pairs {
		r.data[k] = append([]byte(nil), v...)
	}
	return nil
}
