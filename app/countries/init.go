package countries

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/atlas/internal/deps"
)

const (
	ClientKey  = "countries.client"
	ServiceKey = "countries.service"
	ViewsKey   = "countries.views"
)

// InitServices builds the client, service and browse views and registers them
// in the container. The returned Views must be stopped on shutdown.
func InitServices(container *deps.Container, cfg Config) *Views {
	client := NewHTTPClient(cfg, nil, container.Logger)
	views := NewViews(client, container.Logger, cfg.ViewTTL)

	container.RegisterService(ClientKey, Client(client))
	container.RegisterService(ServiceKey, NewService(client, container.Logger))
	container.RegisterService(ViewsKey, views)
	return views
}

// MountPublic mounts public country and browse routes
func MountPublic(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	countriesGroup := r.Group("/countries")
	countriesGroup.GET("", handler.GetAllCountries)
	countriesGroup.GET("/name/:name", handler.SearchCountries)
	countriesGroup.GET("/region/:region", handler.GetCountriesByRegion)
	countriesGroup.GET("/code/:code", handler.GetCountryByCode)

	browseGroup := r.Group("/browse")
	browseGroup.POST("", handler.OpenBrowseView)
	browseGroup.GET("/:id", handler.GetBrowseView)
	browseGroup.PUT("/:id/search", handler.SetBrowseSearch)
	browseGroup.PUT("/:id/region", handler.SetBrowseRegion)
	browseGroup.DELETE("/:id", handler.CloseBrowseView)
}

// createHandler creates a handler with all dependencies
func createHandler(container *deps.Container) *Handler {
	service := deps.MustLookup[Service](container, ServiceKey)
	views := deps.MustLookup[*Views](container, ViewsKey)

	return NewHandler(service, views, container.Sanitizer)
}
