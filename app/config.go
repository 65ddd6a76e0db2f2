package app

import (
	"github.com/joefazee/atlas/app/auth"
	"github.com/joefazee/atlas/app/countries"
	"github.com/joefazee/atlas/app/database"
	"github.com/joefazee/atlas/internal/cache"
	"github.com/joefazee/atlas/internal/nexus"
)

type Config struct {
	DB        database.Config
	Countries countries.Config
	Auth      auth.Config
	Cache     cache.Config

	AppHost  string `env:"APP_HOST" env-default:"localhost"`
	AppPort  string `env:"APP_PORT" env-default:"8080"`
	Env      string `env:"APP_ENV" env-default:"development" validate:"oneof=development staging production test"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.AppHost + ":" + c.AppPort
}

// LoadConfig loads the application configuration from environment variables or a config file.
func LoadConfig(opts ...nexus.LoaderOption) (*Config, error) {
	c := &Config{}
	err := nexus.NewLoader(opts...).Load(c)
	return c, err
}
