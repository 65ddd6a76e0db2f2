package security

import "time"

// Maker issues and checks access tokens bound to a session.
type Maker interface {
	CreateToken(sessionID, email string, duration time.Duration) (string, *Payload, error)
	// VerifyToken returns ErrInvalidToken or ErrExpiredToken on failure.
	VerifyToken(token string) (*Payload, error)
}
