package contract

import (
	"context"

	"account-plan-be/pkg/store"
)

// SessionRepository abstracts the session backing store so the conversation
// engine never touches a concrete map. Implementations must be safe for
// concurrent use across different session ids.
type SessionRepository interface {
	// Get returns the session for id, or false when none exists (or it expired).
	Get(ctx context.Context, id string) (*store.Session, bool, error)

	// GetOrCreate returns the existing session or persists and returns a
	// fresh discovery-mode session.
	GetOrCreate(ctx context.Context, id string) (*store.Session, error)

	// Save persists the session, refreshing its TTL if the store has one.
	Save(ctx context.Context, session *store.Session) error

	// Delete removes the session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error
}
