package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	rateLimitWindow   = time.Minute
	rateLimitRequests = 60
)

// rateLimit applies a fixed-window counter per client IP, backed by
// valkey. Without a valkey connection the limiter is a no-op; a counter
// error fails open.
func (s *Server) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.valkey == nil {
			c.Next()
			return
		}

		key := "ratelimit:radar:" + c.ClientIP()
		count, err := s.valkey.IncrWindow(c.Request.Context(), key, rateLimitWindow)
		if err != nil {
			slog.Warn("[RateLimit] Counter unavailable, allowing request",
				slog.String("error", err.Error()))
			c.Next()
			return
		}

		if count > rateLimitRequests {
			c.AbortWithStatusJSON(429, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
