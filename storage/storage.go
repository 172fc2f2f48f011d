// Package storage provides the backends the catalog reads its recipes from
// and persists small state blobs (favorites) to.
package storage

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by a Blob when nothing is stored under a key.
var ErrNotFound = errors.New("not found")

// RecipeState is a read-only stored catalog.
type RecipeState interface {
	Load(ctx context.Context) ([]byte, error)
}

// Blob is a string-keyed store of opaque values.
type Blob interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
}

// TestRecipeState is a simple in-memory implementation for testing
type TestRecipeState struct {
	data []byte
	err  error
}

func NewTestRecipeState(data []byte) *TestRecipeState {
	return &TestRecipeState{data: data}
}

func NewTestRecipeStateWithError() *TestRecipeState {
	return &TestRecipeState{err: errors.New("not found")}
}

func (t *TestRecipeState) Load(ctx context.Context) ([]byte, error) {
	if t.err != nil {
		return nil, t.err
	}
	return t.data, nil
}

// MemoryBlob keeps values in process memory.
type MemoryBlob struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryBlob() *MemoryBlob {
	return &MemoryBlob{values: map[string][]byte{}}
}

func (m *MemoryBlob) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryBlob) Set(ctx context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append([]byte(nil), data...)
	return nil
}
