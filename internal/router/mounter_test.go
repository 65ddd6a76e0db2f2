package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/joefazee/atlas/internal/deps"
	"github.com/stretchr/testify/assert"
)

func TestMounter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	container := deps.NewContainer(nil, nil, nil, nil, nil)
	m := NewMounter(container)

	m.Public(engine).Mount(func(r *gin.RouterGroup, c *deps.Container) {
		assert.Same(t, container, c)
		r.GET("/open", func(c *gin.Context) { c.Status(http.StatusOK) })
	}).GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	deny := func(c *gin.Context) { c.AbortWithStatus(http.StatusUnauthorized) }
	m.Authenticated(engine, deny).Group("/favorites").Mount(func(r *gin.RouterGroup, _ *deps.Container) {
		r.GET("", func(c *gin.Context) { c.Status(http.StatusOK) })
	})

	tests := []struct {
		path string
		want int
	}{
		{"/api/v1/open", http.StatusOK},
		{"/api/v1/healthz", http.StatusNoContent},
		{"/api/v1/favorites", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
		assert.Equal(t, tt.want, w.Code, tt.path)
	}
}
