package utils

import (
	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key under which the per-request
// correlation id is stored by the request id middleware.
const RequestIDKey = "request_id"

// Response is the uniform envelope every endpoint answers with.
// success=true implies code==200 and a non-null data payload;
// success=false implies data is null.
type Response struct {
	Success   bool        `json:"success"`
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id"`
	Data      interface{} `json:"data"`
}

// RequestID returns the correlation id assigned to the current request,
// or "n/a" when the middleware did not run.
func RequestID(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}
	return "n/a"
}

// SuccessResponse sends the envelope with the given data payload.
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success:   true,
		Code:      statusCode,
		Message:   message,
		RequestID: RequestID(c),
		Data:      data,
	})
}

// ErrorResponse sends the envelope with a null data payload.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success:   false,
		Code:      statusCode,
		Message:   message,
		RequestID: RequestID(c),
		Data:      nil,
	})
}
