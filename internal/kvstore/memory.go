package kvstore

import (
	"context"
	"sync"
	"time"

	"github.com/medibook/medibook/internal/common"
)

type memoryEntry struct {
	value    string
	deadline time.Time
}

// MemoryStore is a process-local Store used in tests and single-node
// development setups. Expired entries are dropped lazily on read.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: map[string]memoryEntry{}, now: time.Now}
}

func (s *MemoryStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{value: value, deadline: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return "", common.ErrorNotFound
	}
	if s.now().After(entry.deadline) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return "", common.ErrorNotFound
	}
	return entry.value, nil
}

func (s *MemoryStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
