package session

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-api/internal/config"
	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	store, err := NewRedisStore(context.Background(), config.Session{
		RedisAddress: mr.Addr(),
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store, mr
}

func testSession(token string) Session {
	now := time.Now().UTC().Truncate(time.Second)
	return Session{
		Token:      token,
		UserID:     "user-1",
		Email:      "john@example.com",
		Attributes: map[string]string{"locale": "en"},
		CreatedAt:  now,
		LastAccess: now,
		ExpiresAt:  now.Add(time.Hour),
	}
}

func TestRedisStore_CreateAndGet(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	sess := testSession("token-1")
	require.NoError(t, store.Create(ctx, sess, time.Hour))

	got, err := store.Get(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, "token-1", got.Token)
	assert.Equal(t, sess.UserID, got.UserID)
	assert.Equal(t, sess.Email, got.Email)
	assert.Equal(t, sess.Attributes, got.Attributes)
}

func TestRedisStore_Create_TokenCollision(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, testSession("dup"), time.Hour))

	err := store.Create(ctx, testSession("dup"), time.Hour)
	assert.ErrorIs(t, err, ErrTokenExists)
}

func TestRedisStore_Get_NotFound(t *testing.T) {
	store, _ := newTestRedisStore(t)

	_, err := store.Get(context.Background(), "never-issued")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStore_Get_AfterTTLExpiry(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, testSession("short"), time.Minute))

	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStore_Touch_SlidesTTL(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, testSession("slide"), time.Minute))

	// without the touch the session would be gone after 90 seconds
	mr.FastForward(30 * time.Second)
	require.NoError(t, store.Touch(ctx, "slide", time.Minute))
	mr.FastForward(59 * time.Second)

	got, err := store.Get(ctx, "slide")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
	assert.True(t, got.LastAccess.After(got.CreatedAt))
}

func TestRedisStore_Touch_NotFound(t *testing.T) {
	store, _ := newTestRedisStore(t)

	err := store.Touch(context.Background(), "missing", time.Minute)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStore_Delete_ReadAfterDelete(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, testSession("gone"), time.Hour))
	require.NoError(t, store.Delete(ctx, "gone"))

	_, err := store.Get(ctx, "gone")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// deleting again is not an error
	assert.NoError(t, store.Delete(ctx, "gone"))
}

func TestRedisStore_StoreUnavailable(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, testSession("alive"), time.Hour))
	mr.Close()

	_, err := store.Get(ctx, "alive")
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	assert.ErrorIs(t, store.Create(ctx, testSession("new"), time.Hour), ErrStoreUnavailable)
	assert.ErrorIs(t, store.Touch(ctx, "alive", time.Hour), ErrStoreUnavailable)
	assert.ErrorIs(t, store.Delete(ctx, "alive"), ErrStoreUnavailable)
	assert.ErrorIs(t, store.Ping(ctx), ErrStoreUnavailable)
}

func TestRedisStore_Get_CorruptBlobDropped(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(keyPrefix+"corrupt", "{not json"))

	_, err := store.Get(ctx, "corrupt")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.False(t, mr.Exists(keyPrefix+"corrupt"), "corrupt record should be dropped")
}
