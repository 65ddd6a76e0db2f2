package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions tunes the client and the per-call timeout.
type RedisOptions struct {
	Addr            string
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
	OpTimeout       time.Duration // 50ms when zero
	KeyPrefix       string        // e.g. "atlas:"
}

// RedisCache stores values under KeyPrefix+key. Strings are written as-is so
// other tools can read them; any other V is JSON encoded.
type RedisCache[V any] struct {
	client    *redis.Client
	opTimeout time.Duration
	prefix    string
}

var _ Cache[string] = (*RedisCache[string])(nil)

func NewRedisCache[V any](opts *RedisOptions) *RedisCache[V] {
	opTimeout := opts.OpTimeout
	if opTimeout == 0 {
		opTimeout = 50 * time.Millisecond
	}
	return &RedisCache[V]{
		client: redis.NewClient(&redis.Options{
			Addr:            opts.Addr,
			Password:        opts.Password,
			DB:              opts.DB,
			PoolSize:        opts.PoolSize,
			MinIdleConns:    opts.MinIdleConns,
			MaxRetries:      opts.MaxRetries,
			MinRetryBackoff: opts.MinRetryBackoff,
			MaxRetryBackoff: opts.MaxRetryBackoff,
		}),
		opTimeout: opTimeout,
		prefix:    opts.KeyPrefix,
	}
}

func (r *RedisCache[V]) Close() error {
	return r.client.Close()
}

// Ping is used at startup to fail fast on a bad address.
func (r *RedisCache[V]) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache[V]) Get(ctx context.Context, key string) (V, error) {
	var val V
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return val, ErrCacheMiss
	case err != nil:
		return val, err
	}

	if s, ok := any(&val).(*string); ok {
		*s = string(data)
		return val, nil
	}
	if err := json.Unmarshal(data, &val); err != nil {
		var zero V
		return zero, err
	}
	return val, nil
}

func (r *RedisCache[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	var data []byte
	if s, ok := any(value).(string); ok {
		data = []byte(s)
	} else {
		var err error
		if data, err = json.Marshal(value); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()
	return r.client.Set(ctx, r.prefix+key, data, max(ttl, 0)).Err()
}

func (r *RedisCache[V]) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()
	return r.client.Del(ctx, r.prefix+key).Err()
}
