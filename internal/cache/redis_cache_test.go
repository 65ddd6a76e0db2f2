package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedSession struct {
	Email string `json:"email"`
}

func newRedisCache[V any](t *testing.T, opTimeout time.Duration) (*RedisCache[V], *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	rc := NewRedisCache[V](&RedisOptions{
		Addr:            s.Addr(),
		PoolSize:        5,
		MaxRetries:      1,
		MinRetryBackoff: time.Millisecond,
		MaxRetryBackoff: 10 * time.Millisecond,
		OpTimeout:       opTimeout,
		KeyPrefix:       "atlas:",
	})
	t.Cleanup(func() { _ = rc.Close() })
	return rc, s
}

func TestRedisCache_DefaultOpTimeout(t *testing.T) {
	rc, _ := newRedisCache[string](t, 0)
	assert.Equal(t, 50*time.Millisecond, rc.opTimeout)
	assert.NoError(t, rc.Ping(context.Background()))
}

func TestRedisCache_Strings(t *testing.T) {
	rc, s := newRedisCache[string](t, 100*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, rc.Set(ctx, "session:s1", `{"id":"s1"}`, time.Hour))

	raw, err := s.Get("atlas:session:s1")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"s1"}`, raw)
	assert.Equal(t, time.Hour, s.TTL("atlas:session:s1"))

	v, err := rc.Get(ctx, "session:s1")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"s1"}`, v)

	_, err = rc.Get(ctx, "session:missing")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_Expiry(t *testing.T) {
	rc, s := newRedisCache[string](t, 100*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, rc.Set(ctx, "temp", "x", 50*time.Millisecond))
	s.FastForward(100 * time.Millisecond)

	v, err := rc.Get(ctx, "temp")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Empty(t, v)

	require.NoError(t, rc.Set(ctx, "forever", "x", -time.Second))
	assert.Zero(t, s.TTL("atlas:forever"))
}

func TestRedisCache_Delete(t *testing.T) {
	rc, _ := newRedisCache[string](t, 100*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, rc.Set(ctx, "key", "value", 0))
	require.NoError(t, rc.Delete(ctx, "key"))
	_, err := rc.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_Structs(t *testing.T) {
	rc, s := newRedisCache[cachedSession](t, 100*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, rc.Set(ctx, "s1", cachedSession{Email: "jane@example.com"}, time.Minute))
	got, err := rc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", got.Email)

	s.Set("atlas:bad", "not-a-json")
	got, err = rc.Get(ctx, "bad")
	assert.ErrorContains(t, err, "invalid character")
	assert.Empty(t, got.Email)
}

func TestRedisCache_MarshalError(t *testing.T) {
	rc, _ := newRedisCache[func()](t, 50*time.Millisecond)

	err := rc.Set(context.Background(), "fn", func() {}, 0)
	assert.ErrorContains(t, err, "unsupported type")
}

func TestRedisCache_Closed(t *testing.T) {
	rc, _ := newRedisCache[string](t, 50*time.Millisecond)
	require.NoError(t, rc.Close())

	_, err := rc.Get(context.Background(), "key")
	assert.Error(t, err)
}
