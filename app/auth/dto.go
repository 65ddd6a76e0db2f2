package auth

import (
	"strings"
	"time"

	"github.com/joefazee/atlas/internal/validator"
)

// MinPasswordRunes is the demo password rule: longer than five characters.
const MinPasswordRunes = 6

// CredentialsRequest is the body of login and register.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Normalize trims and lower-cases the email.
func (r *CredentialsRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// Validate applies the demo rules. No credential is checked anywhere.
func (r *CredentialsRequest) Validate(v *validator.Validator) bool {
	v.Check(validator.NotBlank(r.Email), "email", "email is required")
	v.Check(validator.MinRunes(r.Password, MinPasswordRunes), "password", "password must be longer than 5 characters")
	return v.Valid()
}

// LoginResponse carries the access token and the session it belongs to.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        User      `json:"user"`
}
