package memory

import (
	"context"
	"testing"
	"time"

	"account-plan-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func TestGetOrCreateReturnsFreshDiscoverySession(t *testing.T) {
	repo := NewSessionRepository(0)
	ctx := context.Background()

	session, err := repo.GetOrCreate(ctx, "s1")
	assert.NoError(t, err)
	assert.Equal(t, "s1", session.ID)
	assert.Equal(t, store.ModeDiscovery, session.Mode)

	again, err := repo.GetOrCreate(ctx, "s1")
	assert.NoError(t, err)
	assert.Same(t, session, again)
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	repo := NewSessionRepository(0)
	ctx := context.Background()

	session := store.NewSession("s1")
	session.Mode = store.ModeResearch
	session.TargetCompany = "Acme Corp"
	assert.NoError(t, repo.Save(ctx, session))

	got, found, err := repo.Get(ctx, "s1")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Acme Corp", got.TargetCompany)
}

func TestDeleteRemovesSession(t *testing.T) {
	repo := NewSessionRepository(0)
	ctx := context.Background()

	assert.NoError(t, repo.Save(ctx, store.NewSession("s1")))
	assert.NoError(t, repo.Delete(ctx, "s1"))

	_, found, err := repo.Get(ctx, "s1")
	assert.NoError(t, err)
	assert.False(t, found)

	// Deleting again is not an error.
	assert.NoError(t, repo.Delete(ctx, "s1"))
}

func TestSessionsExpireWithTTL(t *testing.T) {
	repo := NewSessionRepository(20 * time.Millisecond)
	ctx := context.Background()

	assert.NoError(t, repo.Save(ctx, store.NewSession("s1")))

	_, found, _ := repo.Get(ctx, "s1")
	assert.True(t, found)

	time.Sleep(40 * time.Millisecond)

	_, found, _ = repo.Get(ctx, "s1")
	assert.False(t, found)
}
