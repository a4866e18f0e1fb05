package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/pricesnap/pricesnap-api/internal/utils"
)

// APIKeyMiddleware authenticates the mobile/web app itself on the public
// catalog and auth routes via the X-App-Key header. Invalid attempts are
// rate limited per IP.
type APIKeyMiddleware struct {
	keys        []string
	rateLimiter *InvalidAuthRateLimiter
}

// NewAPIKeyMiddleware constructs an APIKeyMiddleware over the configured
// app keys. With no keys configured the check is disabled (local dev).
func NewAPIKeyMiddleware(keys []string) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		keys:        keys,
		rateLimiter: NewInvalidAuthRateLimiter(),
	}
}

// Handle returns a Gin middleware function that enforces the app key.
func (m *APIKeyMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(m.keys) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader("X-App-Key")
		if key == "" || !m.matches(key) {
			ip := c.ClientIP()
			if !m.rateLimiter.Allow(ip) {
				utils.Error(c, 429, "TOO_MANY_REQUESTS", "Too many invalid authentication attempts")
				c.Abort()
				return
			}
			utils.Error(c, 401, "INVALID_APP_KEY", "Missing or invalid app key")
			c.Abort()
			return
		}

		c.Next()
	}
}

func (m *APIKeyMiddleware) matches(key string) bool {
	for _, k := range m.keys {
		if subtle.ConstantTimeCompare([]byte(k), []byte(key)) == 1 {
			return true
		}
	}
	return false
}
