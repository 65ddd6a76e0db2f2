package deps

import (
	"fmt"

	"github.com/joefazee/atlas/internal/cache"
	"github.com/joefazee/atlas/internal/logger"
	"github.com/joefazee/atlas/internal/sanitizer"
	"github.com/joefazee/atlas/internal/security"
	"gorm.io/gorm"
)

// Container holds the shared dependencies handed to every module at startup.
type Container struct {
	DB         *gorm.DB
	TokenMaker security.Maker
	Sanitizer  sanitizer.HTMLStripperer
	Logger     logger.Logger
	Cache      cache.Cache[string] // session storage

	// Modules publish services here so others can use them without import cycles.
	services map[string]interface{}
}

func NewContainer(db *gorm.DB, tokenMaker security.Maker, sanitizer sanitizer.HTMLStripperer, log logger.Logger, c cache.Cache[string]) *Container {
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &Container{
		DB:         db,
		TokenMaker: tokenMaker,
		Sanitizer:  sanitizer,
		Logger:     log,
		Cache:      c,
		services:   make(map[string]interface{}),
	}
}

// RegisterService publishes service under key, replacing any earlier one.
// Registration happens during startup only.
func (c *Container) RegisterService(key string, service interface{}) {
	c.services[key] = service
}

func (c *Container) GetService(key string) interface{} {
	return c.services[key]
}

// Lookup returns the service under key as T.
func Lookup[T any](c *Container, key string) (T, error) {
	v, ok := c.services[key]
	if !ok {
		var zero T
		return zero, fmt.Errorf("deps: no service registered as %q", key)
	}
	svc, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("deps: service %q is %T, not %T", key, v, zero)
	}
	return svc, nil
}

// MustLookup is Lookup for wiring code, where a missing service is a
// programming error.
func MustLookup[T any](c *Container, key string) T {
	svc, err := Lookup[T](c, key)
	if err != nil {
		panic(err)
	}
	return svc
}
