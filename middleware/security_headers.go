package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/knowgrow/agency-backend/config"
)

// SecurityHeadersMiddleware adds security-related HTTP headers to all responses.
// The API only serves JSON, so the set is limited to framing, sniffing and
// referrer controls plus HSTS in production. X-XSS-Protection is not sent:
// current browsers ignore it and OWASP advises leaving it off.
func SecurityHeadersMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Responses are never meant to be framed.
		c.Header("X-Frame-Options", "DENY")

		// Browsers must honour the declared application/json type.
		c.Header("X-Content-Type-Options", "nosniff")

		// Full URL for same-origin requests, origin only for cross-origin HTTPS.
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// HSTS only in production; local development runs over plain HTTP.
		if cfg.IsProduction() {
			// One year, covering subdomains.
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
