package favorites

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/atlas/app/countries"
	"github.com/joefazee/atlas/internal/deps"
)

const ServiceKey = "favorites.service"

// InitServices wires the repository and service. The countries client must
// already be registered.
func InitServices(container *deps.Container) Service {
	lookup := deps.MustLookup[countries.Client](container, countries.ClientKey)
	service := NewService(NewRepository(container.DB), lookup, container.Sanitizer, container.Logger)
	container.RegisterService(ServiceKey, service)
	return service
}

// MountAuthenticated mounts the favorites routes
func MountAuthenticated(r *gin.RouterGroup, container *deps.Container) {
	handler := NewHandler(deps.MustLookup[Service](container, ServiceKey))

	favoritesGroup := r.Group("/favorites")
	favoritesGroup.POST("", handler.AddFavorite)
	favoritesGroup.GET("", handler.ListFavorites)
	favoritesGroup.GET("/:code", handler.CheckFavorite)
	favoritesGroup.DELETE("/:code", handler.RemoveFavorite)
}
