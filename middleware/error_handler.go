package middleware

import (
	"net/http"

	"CaptchaOCR/utils"

	"github.com/gin-gonic/gin"
)

// ErrorHandlerMiddleware converts errors attached to the gin context
// into the uniform response envelope.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			if customErr, ok := err.(*utils.CustomError); ok {
				utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
				return
			}

			// Anything unclassified is reported as an internal error,
			// never as raw error text.
			utils.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
		}
	}
}
