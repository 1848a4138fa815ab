package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDContextKey is a gin context key for the per-request identifier.
	RequestIDContextKey = "requestID"
	requestIDHeader     = "X-Request-ID"
)

// RequestID tags each request with a unique identifier. An identifier
// supplied by the client is kept; the value is echoed in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDContextKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
