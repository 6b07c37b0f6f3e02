package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/ideamk/leadmail/errors"
)

// MethodNotAllowed is installed as the engine's NoMethod handler so methods
// gin has no route for still get the JSON 405 body.
func MethodNotAllowed(c *gin.Context) {
	_ = c.Error(errors.MethodNotAllowed(c.Request.Method))
	c.Abort()
}
