package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"inventory-backend/internal/shared/response"
)

// Counter is the slice of the cache layer the limiter needs.
type Counter interface {
	Increment(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

// RateLimit is a fixed-window per-client limiter. The first hit in a
// window sets the expiry; subsequent hits only increment. A broken cache
// fails open so the API stays available.
func RateLimit(counter Counter, limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%d", c.ClientIP(), time.Now().Unix()/int64(window.Seconds()))

		count, err := counter.Increment(c.Request.Context(), key)
		if err != nil {
			log.Warn().Err(err).Msg("Rate limiter unavailable, allowing request")
			c.Next()
			return
		}
		if count == 1 {
			if err := counter.Expire(c.Request.Context(), key, window); err != nil {
				log.Warn().Err(err).Msg("Failed to set rate limit window expiry")
			}
		}

		if count > limit {
			response.Error(c, http.StatusTooManyRequests, "Too many requests, please slow down")
			c.Abort()
			return
		}

		c.Next()
	}
}
