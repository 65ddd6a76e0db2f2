package router

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/atlas/internal/deps"
)

// DefaultPrefix is where every module is mounted.
const DefaultPrefix = "/api/v1"

// MountFunc registers one module's routes on a group.
type MountFunc func(*gin.RouterGroup, *deps.Container)

// Mounter hands the shared container to each module as it mounts.
type Mounter struct {
	container *deps.Container
	prefix    string
}

func NewMounter(container *deps.Container) *Mounter {
	return &Mounter{container: container, prefix: DefaultPrefix}
}

// Public routes are reachable without a session.
func (m *Mounter) Public(engine *gin.Engine) *RouteGroup {
	return &RouteGroup{group: engine.Group(m.prefix), container: m.container}
}

// Authenticated routes run authMiddleware before every handler.
func (m *Mounter) Authenticated(engine *gin.Engine, authMiddleware gin.HandlerFunc) *RouteGroup {
	return m.Public(engine).WithAuth(authMiddleware)
}

type RouteGroup struct {
	group     *gin.RouterGroup
	container *deps.Container
}

func (rg *RouteGroup) Mount(mountFuncs ...MountFunc) *RouteGroup {
	for _, mount := range mountFuncs {
		mount(rg.group, rg.container)
	}
	return rg
}

// GET adds a single route that needs nothing from the container.
func (rg *RouteGroup) GET(path string, handler gin.HandlerFunc) *RouteGroup {
	rg.group.GET(path, handler)
	return rg
}

func (rg *RouteGroup) Group(path string) *RouteGroup {
	return &RouteGroup{group: rg.group.Group(path), container: rg.container}
}

// WithAuth applies to routes mounted after it is called.
func (rg *RouteGroup) WithAuth(authMiddleware gin.HandlerFunc) *RouteGroup {
	rg.group.Use(authMiddleware)
	return rg
}
