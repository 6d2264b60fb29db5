package middleware

import (
	"fmt"
	"net/http"

	"CaptchaOCR/utils"

	"github.com/gin-gonic/gin"
)

// BodySizeLimitMiddleware rejects request bodies above maxBytes with a
// 413 envelope. Bodies without a declared Content-Length are still
// capped through http.MaxBytesReader, which makes a later read fail.
func BodySizeLimitMiddleware(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body too large, limit is %dMB", maxBytes/1024/1024))
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
