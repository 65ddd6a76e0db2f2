package auth

import "time"

type Config struct {
	SymmetricKey string        `env:"SYMMETRIC_KEY" validate:"required,len=32"`
	SessionTTL   time.Duration `env:"SESSION_TTL" env-default:"24h"`
}
