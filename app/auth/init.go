package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/atlas/internal/deps"
)

const ServiceKey = "auth.service"

// InitServices builds the session store and service over the container's
// cache and token maker.
func InitServices(container *deps.Container, cfg Config) Service {
	service := NewService(NewSessionStore(container.Cache), container.TokenMaker, cfg.SessionTTL, container.Logger)
	container.RegisterService(ServiceKey, service)
	return service
}

// MiddlewareFrom returns the auth middleware for the registered service.
func MiddlewareFrom(container *deps.Container) gin.HandlerFunc {
	return Middleware(deps.MustLookup[Service](container, ServiceKey))
}

// MountPublic mounts login and registration
func MountPublic(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	authGroup := r.Group("/auth")
	authGroup.POST("/login", handler.Login)
	authGroup.POST("/register", handler.Register)
}

// MountAuthenticated mounts routes that need a session
func MountAuthenticated(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	authGroup := r.Group("/auth")
	authGroup.POST("/logout", handler.Logout)
	authGroup.GET("/me", handler.Me)
}

func createHandler(container *deps.Container) *Handler {
	return NewHandler(deps.MustLookup[Service](container, ServiceKey), container.Sanitizer)
}
