package countries

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/joefazee/atlas/internal/cache"
	"github.com/joefazee/atlas/internal/logger"
	"github.com/joefazee/atlas/models"
)

// Views keeps one Coordinator per open browse view. Views left idle for
// longer than the TTL expire and their coordinators are closed.
type Views struct {
	client Client
	log    logger.Logger
	ttl    time.Duration
	store  *cache.MemoryCache[*Coordinator]
}

// NewViews creates a registry. Stop releases its janitor.
func NewViews(client Client, log logger.Logger, ttl time.Duration) *Views {
	return newViews(client, log, ttl, cache.NewMemoryCache[*Coordinator]())
}

func newViews(client Client, log logger.Logger, ttl time.Duration, store *cache.MemoryCache[*Coordinator]) *Views {
	if log == nil {
		log = logger.NewNullLogger()
	}
	v := &Views{client: client, log: log, ttl: ttl, store: store}
	store.OnEvict(func(key string, c *Coordinator) {
		c.Close()
		log.Debug("browse view expired", map[string]interface{}{"view_id": key})
	})
	return v
}

// Open creates a view and starts its initial load.
func (v *Views) Open(ctx context.Context) (uuid.UUID, *Coordinator, uint64, error) {
	id := uuid.New()
	c := NewCoordinator(v.client, v.log)
	if err := v.store.Set(ctx, id.String(), c, v.ttl); err != nil {
		c.Close()
		return uuid.Nil, nil, 0, err
	}
	return id, c, c.Load(), nil
}

// Get returns the view's coordinator and restarts its idle timer.
func (v *Views) Get(ctx context.Context, id uuid.UUID) (*Coordinator, error) {
	c, err := v.store.Get(ctx, id.String())
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, models.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := v.store.Set(ctx, id.String(), c, v.ttl); err != nil {
		return nil, err
	}
	return c, nil
}

// Close tears a view down.
func (v *Views) Close(ctx context.Context, id uuid.UUID) error {
	c, err := v.store.Get(ctx, id.String())
	if errors.Is(err, cache.ErrCacheMiss) {
		return models.ErrRecordNotFound
	}
	if err != nil {
		return err
	}
	if err := v.store.Delete(ctx, id.String()); err != nil {
		return err
	}
	c.Close()
	return nil
}

// Len is the number of live views.
func (v *Views) Len() int {
	return v.store.Len()
}

// Stop halts expiry. Open views are left to the process exit.
func (v *Views) Stop() {
	v.store.Stop()
}
