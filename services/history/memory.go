package history

import (
	"context"
	"sync"

	"mealroom/models"
)

// Compile-time interface check.
var _ Store = (*MemoryStore)(nil)

// MemoryStore is an in-memory Store. Safe for concurrent access. Used in
// tests and when running without Redis.
type MemoryStore struct {
	mu     sync.RWMutex
	visits map[string][]models.RoomVisit
}

// NewMemoryStore creates an empty in-memory history store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{visits: make(map[string][]models.RoomVisit)}
}

func (s *MemoryStore) Get(ctx context.Context, deviceID string) ([]models.RoomVisit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.visits[deviceID]
	out := make([]models.RoomVisit, len(stored))
	copy(out, stored)
	return out, nil
}

func (s *MemoryStore) Set(ctx context.Context, deviceID string, visits []models.RoomVisit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]models.RoomVisit, len(visits))
	copy(stored, visits)
	s.visits[deviceID] = stored
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, deviceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.visits, deviceID)
	return nil
}
