package auth

import (
	"strings"
	"time"
)

// User is the demo identity derived from an email address.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is created on login and handed explicitly to every handler that
// needs the current user.
type Session struct {
	ID        string    `json:"id"`
	User      User      `json:"user"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// NameFromEmail returns the part before '@', or the whole address without one.
func NameFromEmail(email string) string {
	if i := strings.IndexByte(email, '@'); i >= 0 {
		return email[:i]
	}
	return email
}
