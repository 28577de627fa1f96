package flash

import (
	"context"
	"sync"
)

// MemoryStore is an in-process flash store for tests and single-instance
// deployments without Redis.
type MemoryStore struct {
	mu      sync.Mutex
	notices map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{notices: make(map[string][]string)}
}

func (s *MemoryStore) Push(ctx context.Context, key, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices[key] = append(s.notices[key], message)
	return nil
}

func (s *MemoryStore) PopAll(ctx context.Context, key string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	messages := s.notices[key]
	delete(s.notices, key)
	return messages, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}
