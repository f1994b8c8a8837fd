// Package memstore provides the in-memory implementation of the session
// repository. Sessions are the only state this service keeps, so a map
// guarded by a read-write mutex replaces a database: each entry carries
// its own lock, and Update serializes all state transitions for one
// session the way a row lock would.
//
// Lock ordering: the store lock is only ever taken to find or remove an
// entry, never while an entry lock is held by the same goroutine, so the
// two levels cannot deadlock. Callers must not re-enter Update from
// inside an Update callback.
package memstore

import (
	"context"
	"sync"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/session"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

type entry struct {
	mu      sync.Mutex
	session *session.Session
}

// SessionStore is an in-memory ports.SessionRepository.
type SessionStore struct {
	mu      sync.RWMutex
	entries map[kernel.UUID]*entry
}

var _ ports.SessionRepository = (*SessionStore)(nil)

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		entries: make(map[kernel.UUID]*entry),
	}
}

// Add stores a new session. The session must be valid and its id unused.
func (s *SessionStore) Add(_ context.Context, aggregate *session.Session) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("session id")
	}
	s.entries[aggregate.ID()] = &entry{session: aggregate}
	return nil
}

// Get retrieves a session by id.
func (s *SessionStore) Get(_ context.Context, id kernel.UUID) (*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("session", id)
	}
	return e.session, nil
}

// Delete removes a session. Unknown ids are a no-op.
func (s *SessionStore) Delete(_ context.Context, id kernel.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
	return nil
}

// DeleteExpired removes every session past its lifetime, closing attached
// checkouts so in-flight completions targeting them are dropped.
func (s *SessionStore) DeleteExpired(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	expired := make([]*entry, 0)
	for id, e := range s.entries {
		if e.session.Expired(now) {
			expired = append(expired, e)
			delete(s.entries, id)
		}
	}
	s.mu.Unlock()

	for _, e := range expired {
		e.mu.Lock()
		e.session.EndCheckout()
		e.mu.Unlock()
	}
	return len(expired), nil
}

// Update runs fn under the session's entry lock. Returns
// ObjectNotFoundError when the id is unknown; otherwise fn's error.
func (s *SessionStore) Update(_ context.Context, id kernel.UUID, fn func(*session.Session) error) error {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok {
		return errs.NewObjectNotFoundError("session", id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}
