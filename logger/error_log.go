package logger

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestIDKey is the gin context key holding the request ID.
const RequestIDKey = "request_id"

// ForRequest returns the global logger enriched with the request ID and route
// of the current gin request.
func ForRequest(c *gin.Context) *zap.SugaredLogger {
	log := GetLogger()
	if c == nil || c.Request == nil {
		return log
	}
	return log.With(
		"request_id", c.GetString(RequestIDKey),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)
}

// LogHTTPError logs a failed request with its status code, client address and
// a filtered copy of the request headers. Server-side failures log at error
// level; client mistakes at warn.
func LogHTTPError(c *gin.Context, err error, statusCode int, message string) {
	log := ForRequest(c).With(
		"status_code", statusCode,
		"client_ip", c.ClientIP(),
		"user_agent", c.Request.UserAgent(),
		"headers", filterSensitiveHeaders(c.Request.Header),
	)

	if statusCode >= http.StatusInternalServerError {
		log.Desugar().Error(message, zap.Error(err))
		return
	}
	log.Desugar().Warn(message, zap.Error(err))
}

// filterSensitiveHeaders redacts credentials and session material before logging.
func filterSensitiveHeaders(headers http.Header) map[string]string {
	filtered := make(map[string]string, len(headers))

	for name, values := range headers {
		lower := strings.ToLower(name)
		if lower == "authorization" || lower == "cookie" ||
			strings.Contains(lower, "token") ||
			strings.Contains(lower, "key") ||
			strings.Contains(lower, "secret") {
			filtered[name] = "[REDACTED]"
			continue
		}
		if len(values) > 0 {
			filtered[name] = values[0]
		}
	}

	return filtered
}
