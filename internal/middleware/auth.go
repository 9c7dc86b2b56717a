package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/minakianandclaude/LifeTracker/pkg/response"
)

// APIKeyHeader is the header clients put the shared key in.
const APIKeyHeader = "X-API-Key"

// Auth rejects requests whose X-API-Key does not match the configured key.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(APIKeyHeader)
		if key == "" || subtle.ConstantTimeCompare([]byte(key), m.apiKey) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: rejected %s %s from %s", c.Request.Method, c.Request.URL.Path, c.ClientIP())
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}
