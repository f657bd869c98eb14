package session

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(ttl time.Duration) *Manager {
	return NewManager(NewMemoryStore(), ttl, logger.Nop())
}

func TestManager_CreateResolvesUntilDelete(t *testing.T) {
	m := newTestManager(time.Hour)
	ctx := context.Background()

	sess, err := m.Create(ctx, models.Profile{UserID: "u-1", Email: "john@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)
	assert.Len(t, sess.Token, tokenBytes*2, "hex-encoded token length")

	got, err := m.Get(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.UserID)
	assert.Equal(t, "john@example.com", got.Email)

	require.NoError(t, m.Delete(ctx, sess.Token))

	_, err = m.Get(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_TokensAreUnique(t *testing.T) {
	m := newTestManager(time.Hour)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		sess, err := m.Create(ctx, models.Profile{UserID: "u-1"})
		require.NoError(t, err)
		assert.False(t, seen[sess.Token], "token issued twice")
		seen[sess.Token] = true
	}
}

func TestManager_GetEmptyToken(t *testing.T) {
	m := newTestManager(time.Hour)

	_, err := m.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_DeleteEmptyTokenIsNoop(t *testing.T) {
	m := newTestManager(time.Hour)
	assert.NoError(t, m.Delete(context.Background(), ""))
}

func TestManager_TouchExtendsExpiry(t *testing.T) {
	m := newTestManager(50 * time.Millisecond)
	ctx := context.Background()

	sess, err := m.Create(ctx, models.Profile{UserID: "u-1"})
	require.NoError(t, err)

	// keep the session alive past its original deadline
	time.Sleep(30 * time.Millisecond)
	require.NoError(t, m.Touch(ctx, sess.Token))
	time.Sleep(30 * time.Millisecond)

	_, err = m.Get(ctx, sess.Token)
	assert.NoError(t, err, "touched session should still be alive")

	// and let it lapse for real
	time.Sleep(60 * time.Millisecond)
	_, err = m.Get(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_ExpiredSessionIsPurged(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess := testSession("expired")
	require.NoError(t, store.Create(ctx, sess, -time.Second))

	_, err := store.Get(ctx, "expired")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	err = store.Touch(ctx, "expired", time.Hour)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
