package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/session"
)

// SessionRepository defines the storage contract for session aggregates.
// Sessions live in memory only; the interface still takes a context so an
// implementation backed by an external store would slot in unchanged.
type SessionRepository interface {
	// Add stores a new session. The session must be valid and its id
	// must not already exist.
	Add(ctx context.Context, aggregate *session.Session) error

	// Get retrieves a session by its identifier. Returns
	// ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*session.Session, error)

	// Delete removes a session. Unknown ids are a no-op.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteExpired removes every session past its lifetime at the given
	// instant, closing any attached checkout first. Returns how many
	// sessions were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int, error)

	// Update runs fn on the session under its per-session lock, so all
	// state transitions for one session are serialized. fn's error is
	// returned as-is; ObjectNotFoundError when the id is unknown.
	Update(ctx context.Context, id kernel.UUID, fn func(*session.Session) error) error
}
