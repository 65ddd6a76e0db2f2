package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/joefazee/atlas/internal/logger"
	"github.com/joefazee/atlas/internal/security"
	"github.com/joefazee/atlas/internal/validator"
	"github.com/joefazee/atlas/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRegistrationFailed = errors.New("registration failed")
)

// Service is the mock login boundary.
type Service interface {
	Login(ctx context.Context, req *CredentialsRequest) (*LoginResponse, error)
	Register(ctx context.Context, req *CredentialsRequest) (*LoginResponse, error)
	Logout(ctx context.Context, sess *Session) error
	Resolve(ctx context.Context, token string) (*Session, error)
}

type service struct {
	store SessionStore
	maker security.Maker
	ttl   time.Duration
	log   logger.Logger
	now   func() time.Time
}

// NewService creates the auth service. A zero ttl means 24 hours.
func NewService(store SessionStore, maker security.Maker, ttl time.Duration, log logger.Logger) Service {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &service{store: store, maker: maker, ttl: ttl, log: log, now: time.Now}
}

func (s *service) Login(ctx context.Context, req *CredentialsRequest) (*LoginResponse, error) {
	return s.open(ctx, req, ErrInvalidCredentials)
}

func (s *service) Register(ctx context.Context, req *CredentialsRequest) (*LoginResponse, error) {
	return s.open(ctx, req, ErrRegistrationFailed)
}

// open accepts any non-blank email with a long enough password.
func (s *service) open(ctx context.Context, req *CredentialsRequest, rejected error) (*LoginResponse, error) {
	req.Normalize()
	if !req.Validate(validator.New()) {
		return nil, rejected
	}

	now := s.now()
	sess := &Session{
		ID:        uuid.NewString(),
		User:      User{Email: req.Email, Name: NameFromEmail(req.Email)},
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl),
	}

	token, _, err := s.maker.CreateToken(sess.ID, sess.User.Email, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.log.Info("session opened", map[string]interface{}{"session_id": sess.ID, "user": sess.User.Name})
	return &LoginResponse{AccessToken: token, ExpiresAt: sess.ExpiresAt, User: sess.User}, nil
}

func (s *service) Logout(ctx context.Context, sess *Session) error {
	if sess == nil {
		return models.ErrSessionNotFound
	}
	return s.store.Delete(ctx, sess.ID)
}

// Resolve maps an access token to its live session.
func (s *service) Resolve(ctx context.Context, token string) (*Session, error) {
	payload, err := s.maker.VerifyToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrUnauthorized, err)
	}

	sess, err := s.store.Get(ctx, payload.SessionID)
	if err != nil {
		return nil, err
	}
	if sess.Expired(s.now()) {
		_ = s.store.Delete(ctx, sess.ID)
		return nil, models.ErrSessionExpired
	}
	if sess.User.Email != payload.Email {
		return nil, models.ErrUnauthorized
	}
	return sess, nil
}
