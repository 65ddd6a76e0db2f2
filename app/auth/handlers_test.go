package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/joefazee/atlas/app/api"
	"github.com/joefazee/atlas/internal/cache"
	"github.com/joefazee/atlas/internal/deps"
	"github.com/joefazee/atlas/internal/logger"
	"github.com/joefazee/atlas/internal/router"
	"github.com/joefazee/atlas/internal/sanitizer"
	"github.com/joefazee/atlas/internal/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	maker, err := security.NewPasetoMaker(testKey)
	require.NoError(t, err)
	mc := cache.NewMemoryCache[string]()
	t.Cleanup(mc.Stop)

	container := deps.NewContainer(nil, maker, sanitizer.NewHTMLStripper(), logger.NewNullLogger(), mc)
	InitServices(container, Config{SymmetricKey: testKey})

	r := gin.New()
	m := router.NewMounter(container)
	m.Public(r).Mount(MountPublic)
	m.Authenticated(r, MiddlewareFrom(container)).Mount(MountAuthenticated)
	return r
}

func call(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (int, api.Response) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(AuthorizationHeaderKey, "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp api.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestHandlers_LoginMeLogout(t *testing.T) {
	r := setupRouter(t)

	code, resp := call(t, r, http.MethodPost, "/api/v1/auth/login", "", CredentialsRequest{Email: "jane@example.com", Password: "secret"})
	require.Equal(t, http.StatusOK, code)
	data := resp.Data.(map[string]interface{})
	token := data["access_token"].(string)
	require.NotEmpty(t, token)

	code, resp = call(t, r, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "jane", resp.Data.(map[string]interface{})["name"])

	code, _ = call(t, r, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = call(t, r, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestHandlers_Failures(t *testing.T) {
	r := setupRouter(t)

	code, resp := call(t, r, http.MethodPost, "/api/v1/auth/login", "", CredentialsRequest{Email: "jane@example.com", Password: "short"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid credentials", resp.Error.Message)

	code, resp = call(t, r, http.MethodPost, "/api/v1/auth/register", "", CredentialsRequest{Email: "", Password: "longenough"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Registration failed", resp.Error.Message)

	code, _ = call(t, r, http.MethodPost, "/api/v1/auth/register", "", CredentialsRequest{Email: "new@example.com", Password: "longenough"})
	assert.Equal(t, http.StatusCreated, code)
}

func TestMiddleware_RejectsBadHeaders(t *testing.T) {
	r := setupRouter(t)

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer not-a-token", "Bearer a b"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		if header != "" {
			req.Header.Set(AuthorizationHeaderKey, header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestSessionFrom(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := SessionFrom(c)
	assert.False(t, ok)

	WithSession(c, &Session{ID: "s1"})
	sess, ok := SessionFrom(c)
	require.True(t, ok)
	assert.Equal(t, "s1", sess.ID)
}
