package cache

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockCache records calls for tests that need a failing or scripted backend.
// Get returns the zero V whenever the first return value is nil.
type MockCache[V any] struct {
	mock.Mock
}

var _ Cache[string] = (*MockCache[string])(nil)

func (m *MockCache[V]) Get(ctx context.Context, key string) (V, error) {
	args := m.Called(ctx, key)
	v, _ := args.Get(0).(V)
	return v, args.Error(1)
}

func (m *MockCache[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *MockCache[V]) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}
