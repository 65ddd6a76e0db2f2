package auth

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/joefazee/atlas/internal/cache"
	"github.com/joefazee/atlas/models"
)

// SessionStore persists sessions until they expire.
type SessionStore interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

type cacheStore struct {
	cache cache.Cache[string]
}

// NewSessionStore keeps sessions as JSON in c, expiring with the session.
func NewSessionStore(c cache.Cache[string]) SessionStore {
	return &cacheStore{cache: c}
}

func sessionKey(id string) string {
	return "session:" + id
}

func (s *cacheStore) Save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return models.ErrSessionExpired
	}
	return s.cache.Set(ctx, sessionKey(sess.ID), string(data), ttl)
}

func (s *cacheStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.cache.Get(ctx, sessionKey(id))
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, models.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *cacheStore) Delete(ctx context.Context, id string) error {
	return s.cache.Delete(ctx, sessionKey(id))
}
