package middleware

import (
	stdErrors "errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/ideamk/leadmail/errors"
	"github.com/ideamk/leadmail/logger"
	"github.com/ideamk/leadmail/types"
)

// ErrorHandler turns the last error attached to the context into the
// {ok:false,error} body. AppErrors keep their status and client message;
// anything else becomes a 500 carrying the error text.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		message := "Unexpected server error"
		var appError *errors.AppError
		if stdErrors.As(err, &appError) {
			message = fmt.Sprintf("%s error", appError.Type)
		} else {
			appError = errors.InternalServerError(err)
		}

		statusCode := appError.GetHTTPStatus()
		logger.LogHTTPError(c, err, statusCode, message)
		if !c.Writer.Written() {
			c.JSON(statusCode, types.Failed(appError.Message))
		}
	}
}
