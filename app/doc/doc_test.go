package doc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/joefazee/atlas/docs"
)

func TestInit_ServesSwaggerJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Init(r, "production")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Len(t, doc["servers"], 2)

	components := doc["components"].(map[string]interface{})
	schemes := components["securitySchemes"].(map[string]interface{})
	assert.Contains(t, schemes, "BearerAuth")

	paths := doc["paths"].(map[string]interface{})
	assert.Contains(t, paths, "/api/v1/countries")
}

func TestInit_ServesElements(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Init(r, "development")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/docs/index.html", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/swagger/doc.json")
}

func TestServersFor(t *testing.T) {
	assert.Len(t, serversFor("development"), 1)
	assert.Len(t, serversFor("staging"), 2)
	assert.Len(t, serversFor("production"), 2)
}
