package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-auth-api/internal/config"
	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces session records in the shared Redis keyspace.
const keyPrefix = "session:"

// touchScript atomically refreshes a session's access bookkeeping and TTL.
// Doing it server-side avoids a read-modify-write race between concurrent
// requests carrying the same token.
//
// KEYS[1] — session key
// ARGV[1] — new TTL in milliseconds
// ARGV[2] — last-access timestamp (RFC 3339)
// ARGV[3] — new expiry timestamp (RFC 3339)
var touchScript = redis.NewScript(`
local blob = redis.call("GET", KEYS[1])
if not blob then
  return 0
end
local sess = cjson.decode(blob)
sess["last_access"] = ARGV[2]
sess["expires_at"] = ARGV[3]
redis.call("SET", KEYS[1], cjson.encode(sess), "PX", ARGV[1])
return 1
`)

// RedisStore is the Redis-backed implementation of [Store]. Records are JSON
// blobs with a per-key TTL, so expiry is enforced by Redis itself and the
// store is shared across server instances.
type RedisStore struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisStore connects to Redis using the provided session configuration
// and verifies the connection with a ping before returning.
func NewRedisStore(ctx context.Context, cfg config.Session, log *logger.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("addr", cfg.RedisAddress).Msg("error connecting to session store")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	log.Info().Str("addr", cfg.RedisAddress).Msg("connected to session store")

	return &RedisStore{client: client, logger: log}, nil
}

// Create implements [Store]. The record is written with NX so an (extremely
// unlikely) token collision surfaces as [ErrTokenExists] instead of silently
// overwriting another client's session.
func (s *RedisStore) Create(ctx context.Context, sess Session, ttl time.Duration) error {
	blob, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}

	ok, err := s.client.SetNX(ctx, keyPrefix+sess.Token, blob, ttl).Result()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if !ok {
		return ErrTokenExists
	}

	return nil
}

// Get implements [Store].
func (s *RedisStore) Get(ctx context.Context, token string) (Session, error) {
	blob, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return Session{}, ErrSessionNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	var sess Session
	if err := json.Unmarshal(blob, &sess); err != nil {
		// A corrupt blob is unusable; treat it as absent and drop it.
		s.logger.Warn().Err(err).Msg("dropping corrupt session record")
		_ = s.client.Del(ctx, keyPrefix+token).Err()
		return Session{}, ErrSessionNotFound
	}

	sess.Token = token
	return sess, nil
}

// Touch implements [Store] via the atomic refresh script.
func (s *RedisStore) Touch(ctx context.Context, token string, ttl time.Duration) error {
	now := time.Now().UTC()
	refreshed, err := touchScript.Run(ctx, s.client,
		[]string{keyPrefix + token},
		strconv.FormatInt(ttl.Milliseconds(), 10),
		now.Format(time.RFC3339Nano),
		now.Add(ttl).Format(time.RFC3339Nano),
	).Int64()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if refreshed == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// Delete implements [Store]. Once DEL is acknowledged, no process can
// observe the session as present again.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// Ping implements [Store].
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// Close releases the underlying Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
