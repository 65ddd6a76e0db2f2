package security

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidToken = errors.New("invalid token")
)

// Payload is what an access token carries. The session it names is the
// source of truth; the token only points at it.
type Payload struct {
	ID        uuid.UUID `json:"id"`
	SessionID string    `json:"session_id"`
	Email     string    `json:"email"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func NewPayload(sessionID, email string, duration time.Duration) (*Payload, error) {
	tokenID, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Payload{
		ID:        tokenID,
		SessionID: sessionID,
		Email:     email,
		IssuedAt:  now,
		ExpiresAt: now.Add(duration),
	}, nil
}

// Valid rejects payloads without a session binding or past their expiry.
func (p *Payload) Valid() error {
	if p.SessionID == "" || p.Email == "" {
		return ErrInvalidToken
	}
	if time.Now().After(p.ExpiresAt) {
		return ErrExpiredToken
	}
	return nil
}
