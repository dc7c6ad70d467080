package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory with lazy expiry. It is
// the default when no redis address is configured; sessions do not
// survive a restart, which is acceptable because a suspended lookup can
// always be re-initiated.
type MemoryStore struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]memoryEntry

	now func() time.Time
}

type memoryEntry struct {
	session  *Session
	deadline time.Time
}

// NewMemoryStore constructs a MemoryStore whose sessions expire after
// ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:  ttl,
		data: make(map[string]memoryEntry),
		now:  time.Now,
	}
}

func (s *MemoryStore) Put(_ context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sess.ID] = memoryEntry{session: sess, deadline: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.RLock()
	entry, ok := s.data[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	if s.now().After(entry.deadline) {
		s.mu.Lock()
		delete(s.data, id)
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	return entry.session, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
