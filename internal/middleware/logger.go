package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestLogger emits one structured line per completed request.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		var evt *zerolog.Event
		if c.Writer.Status() >= 500 {
			evt = logger.Error()
		} else {
			evt = logger.Info()
		}
		if userID := c.GetString(ContextUserIDKey); userID != "" {
			evt = evt.Str("user_id", userID)
		}
		evt.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request completed")
	}
}
