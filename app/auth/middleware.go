package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joefazee/atlas/app/api"
)

const (
	AuthorizationHeaderKey  = "Authorization"
	AuthorizationTypeBearer = "Bearer"

	sessionContextKey = "auth.session"
)

// Middleware resolves the bearer token to a Session and stores it on the
// request for SessionFrom.
func Middleware(service Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields := strings.Fields(c.GetHeader(AuthorizationHeaderKey))
		if len(fields) != 2 || !strings.EqualFold(fields[0], AuthorizationTypeBearer) {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		sess, err := service.Resolve(c.Request.Context(), fields[1])
		if err != nil {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// SessionFrom returns the session put there by Middleware.
func SessionFrom(c *gin.Context) (*Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*Session)
	return sess, ok && sess != nil
}

// WithSession attaches sess to c. Tests use it to skip token handling.
func WithSession(c *gin.Context, sess *Session) {
	c.Set(sessionContextKey, sess)
}
