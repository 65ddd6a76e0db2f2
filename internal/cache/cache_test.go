package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemory(t *testing.T) {
	c, err := New[string](Config{Backend: MemoryBackend})
	require.NoError(t, err)
	m, ok := c.(*MemoryCache[string])
	require.True(t, ok, "expected *MemoryCache[string]")
	defer m.Stop()
	ctx := context.Background()

	assert.NoError(t, m.Set(ctx, "foo", "bar", 0))
	v, err := m.Get(ctx, "foo")
	assert.NoError(t, err)
	assert.Equal(t, "bar", v)

	_, err = m.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestNewEmptyBackendDefaultsToMemory(t *testing.T) {
	c, err := New[int](Config{})
	require.NoError(t, err)
	m, ok := c.(*MemoryCache[int])
	require.True(t, ok)
	m.Stop()
}

func TestNewRedis(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	c, err := New[string](Config{
		Backend:   RedisBackend,
		RedisAddr: s.Addr(),
		OpTimeout: 100 * time.Millisecond,
		KeyPrefix: "atlas:",
	})
	require.NoError(t, err)
	r, ok := c.(*RedisCache[string])
	require.True(t, ok, "expected *RedisCache[string]")
	defer r.Close()
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "foo", "baz", 0))
	v, err := r.Get(ctx, "foo")
	assert.NoError(t, err)
	assert.Equal(t, "baz", v)
	assert.True(t, s.Exists("atlas:foo"), "key should carry the configured prefix")
}

func TestNewUnknownBackend(t *testing.T) {
	_, err := New[int](Config{Backend: "memcached"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "memcached")
}
