package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/ideamk/leadmail/config"
)

// SecurityHeadersMiddleware sets the hardening headers sent with every
// answer. The service only returns JSON, so framing and sniffing are refused
// outright. HSTS is limited to production.
func SecurityHeadersMiddleware(cfg *config.ServerConfig) gin.HandlerFunc {
	production := cfg.Environment == config.EnvProduction

	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "no-referrer")
		if production {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
