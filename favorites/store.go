// Package favorites keeps the user's set of favorite recipe ids in a blob backend.
package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"recipecatalog/storage"
)

// Key is the blob key the favorite ids are stored under.
const Key = "favorites"

// Store toggles and queries favorites. The persisted value is a JSON array of
// ids in insertion order. A missing or malformed value reads as empty.
type Store struct {
	mu      sync.Mutex
	backend storage.Blob
}

func NewStore(backend storage.Blob) *Store {
	return &Store{backend: backend}
}

// List returns the favorite ids in insertion order, never nil.
func (s *Store) List(ctx context.Context) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(ctx)
}

func (s *Store) IsFavorite(ctx context.Context, id int) (bool, error) {
	ids, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, id), nil
}

// Toggle adds id if absent or removes it if present, persists the result and
// returns whether id is now a favorite.
func (s *Store) Toggle(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.read(ctx)
	if err != nil {
		return false, err
	}

	favorite := true
	if i := slices.Index(ids, id); i >= 0 {
		ids = slices.Delete(ids, i, i+1)
		favorite = false
	} else {
		ids = append(ids, id)
	}

	data, err := json.Marshal(ids)
	if err != nil {
		return false, err
	}
	if err := s.backend.Set(ctx, Key, data); err != nil {
		return false, err
	}
	return favorite, nil
}

func (s *Store) read(ctx context.Context) ([]int, error) {
	data, err := s.backend.Get(ctx, Key)
	if errors.Is(err, storage.ErrNotFound) {
		return []int{}, nil
	}
	if err != nil {
		return nil, err
	}

	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		slog.Warn("FAVORITES: Ignoring malformed favorites", "error", err)
		return []int{}, nil
	}
	if ids == nil {
		ids = []int{}
	}
	return ids, nil
}
