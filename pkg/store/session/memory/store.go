package memory

import (
	"context"
	"sync"
	"time"

	"github.com/de-tools/cloud-portal/pkg/models/store"
	"github.com/de-tools/cloud-portal/pkg/store/session"
)

type entry struct {
	fields    map[string]string
	createdAt time.Time
	expiresAt time.Time // zero means never
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

type Store struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry

	// nextSweep is when Save next drops expired entries, at most once per ttl.
	nextSweep time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

// Factory registers the in-process backend with a session.Registry.
func Factory(_ context.Context, settings session.Settings) (session.Store, error) {
	return NewStore(settings.TTL), nil
}

func (s *Store) Save(_ context.Context, rec store.SessionRecord) error {
	e := entry{
		fields: map[string]string{
			store.KeyUserRole: rec.UserRole,
			store.KeyUserName: rec.UserName,
		},
		createdAt: rec.CreatedAt,
	}
	now := s.now()
	if s.ttl > 0 {
		e.expiresAt = now.Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ttl > 0 && !now.Before(s.nextSweep) {
		s.sweep(now)
		s.nextSweep = now.Add(s.ttl)
	}
	s.entries[rec.ID] = e
	return nil
}

// sweep drops expired entries. The caller holds the write lock.
func (s *Store) sweep(now time.Time) {
	for id, e := range s.entries {
		if e.expired(now) {
			delete(s.entries, id)
		}
	}
}

func (s *Store) Load(_ context.Context, id string) (store.SessionRecord, error) {
	now := s.now()
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok {
		return store.SessionRecord{}, session.ErrNotFound
	}
	if e.expired(now) {
		s.mu.Lock()
		if cur, ok := s.entries[id]; ok && cur.expired(now) {
			delete(s.entries, id)
		}
		s.mu.Unlock()
		return store.SessionRecord{}, session.ErrNotFound
	}
	role, hasRole := e.fields[store.KeyUserRole]
	if !hasRole {
		return store.SessionRecord{}, session.ErrNotFound
	}

	return store.SessionRecord{
		ID:        id,
		UserRole:  role,
		UserName:  e.fields[store.KeyUserName],
		CreatedAt: e.createdAt,
	}, nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

// Len reports how many sessions are held, including expired ones that have
// not been dropped yet.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
