package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"account-plan-be/internal/repository/contract"
	"account-plan-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "account-plan:session:"

type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

var _ contract.SessionRepository = &SessionRepository{}

// NewSessionRepository creates a Redis-backed session store. Sessions are
// stored as JSON; a ttl of zero means no expiry.
func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*store.Session, bool, error) {
	raw, err := r.client.Get(ctx, keyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get session: %w", err)
	}

	var session store.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, false, fmt.Errorf("unmarshal session %s: %w", id, err)
	}
	return &session, true, nil
}

func (r *SessionRepository) GetOrCreate(ctx context.Context, id string) (*store.Session, error) {
	session, found, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if found {
		return session, nil
	}

	session = store.NewSession(id)
	if err := r.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (r *SessionRepository) Save(ctx context.Context, session *store.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", session.ID, err)
	}
	if err := r.client.Set(ctx, keyPrefix+session.ID, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis save session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	return nil
}
