package session

import (
	"context"
	"sync"
)

// MemoryMarkerStore is an in-process MarkerStore, used in tests.
type MemoryMarkerStore struct {
	mu   sync.Mutex
	seen map[string]bool
}

func NewMemoryMarkerStore() *MemoryMarkerStore {
	return &MemoryMarkerStore{seen: make(map[string]bool)}
}

func (s *MemoryMarkerStore) Claim(_ context.Context, kind, sessionID, workerID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(kind, sessionID, workerID)
	if s.seen[k] {
		return false, nil
	}
	s.seen[k] = true
	return true, nil
}

func (s *MemoryMarkerStore) Release(_ context.Context, kind, sessionID, workerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.seen, key(kind, sessionID, workerID))
	return nil
}
