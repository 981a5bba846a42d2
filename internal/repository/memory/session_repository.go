package memory

import (
	"context"
	"time"

	"account-plan-be/internal/repository/contract"
	"account-plan-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

var _ contract.SessionRepository = &SessionRepository{}

// NewSessionRepository creates an in-memory session store. A ttl of zero
// keeps sessions for the process lifetime (the source behavior); a positive
// ttl expires idle sessions, with expired entries purged every 10 minutes.
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	defaultExpiration := cache.NoExpiration
	cleanupInterval := time.Duration(0)
	if ttl > 0 {
		defaultExpiration = ttl
		cleanupInterval = 10 * time.Minute
	}
	return &SessionRepository{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

func (r *SessionRepository) Get(_ context.Context, id string) (*store.Session, bool, error) {
	if x, found := r.cache.Get(id); found {
		return x.(*store.Session), true, nil
	}
	return nil, false, nil
}

func (r *SessionRepository) GetOrCreate(ctx context.Context, id string) (*store.Session, error) {
	if session, found, _ := r.Get(ctx, id); found {
		return session, nil
	}
	session := store.NewSession(id)
	r.cache.Set(id, session, cache.DefaultExpiration)
	return session, nil
}

func (r *SessionRepository) Save(_ context.Context, session *store.Session) error {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, id string) error {
	r.cache.Delete(id)
	return nil
}
