package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/ideamk/leadmail/config"
)

const (
	corsAllowHeaders = "Content-Type, X-Requested-With"
	corsAllowMethods = "POST, OPTIONS"
)

// CORSMiddleware sets the CORS headers on every response, including errors
// and requests that carry no Origin header. Preflight requests are answered
// by the route handlers.
func CORSMiddleware(cfg *config.ServerConfig) gin.HandlerFunc {
	origin := cfg.AllowOrigin
	if origin == "" {
		origin = "*"
	}

	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Headers", corsAllowHeaders)
		c.Header("Access-Control-Allow-Methods", corsAllowMethods)
		if origin != "*" {
			c.Header("Vary", "Origin")
		}

		c.Next()
	}
}
