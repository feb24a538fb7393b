package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	apperrors "github.com/knowgrow/agency-backend/errors"
	"github.com/knowgrow/agency-backend/logger"
	"github.com/knowgrow/agency-backend/services"
)

// ContactRateLimiter limits submissions per client IP with a fixed window.
// Redis failures let the request through so the form stays usable.
func ContactRateLimiter(limiter services.RateLimiterInterface, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		// ClientIP honours X-Forwarded-For only from trusted proxies.
		key := fmt.Sprintf("contact:%s", c.ClientIP())

		allowed, retryAfter, err := limiter.CheckLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			logger.GetLogger().Warnw("Rate limit check failed, allowing request",
				"error", err,
				"request_id", c.GetString(RequestIDKey))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", limit))

		if !allowed {
			if retryAfter <= 0 {
				retryAfter = window
			}
			seconds := int(retryAfter.Round(time.Second).Seconds())
			if seconds < 1 {
				seconds = 1
			}
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(retryAfter).Unix()))

			_ = c.Error(apperrors.RateLimitExceeded("Too many requests. Please try again later.", seconds))
			c.Abort()
			return
		}

		c.Next()
	}
}
