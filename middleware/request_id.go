package middleware

import (
	"encoding/hex"

	"CaptchaOCR/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDMiddleware assigns an opaque correlation id to every request.
// The id is stored in the gin context for the response envelope and
// echoed in the X-Request-ID header.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New()
		requestID := hex.EncodeToString(id[:])

		c.Set(utils.RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}
