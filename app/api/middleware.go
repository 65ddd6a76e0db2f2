package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joefazee/atlas/internal/logger"
)

// RequestLogger writes one structured line per request.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := map[string]interface{}{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}
		if len(c.Errors) > 0 {
			log.Error(c.Errors.Last(), fields)
			return
		}
		log.Info("request", fields)
	}
}
