package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the header carrying the request correlation ID.
const RequestIDHeader = "X-Request-ID"

const requestIDContextKey = "request_id"

// RequestID returns a middleware that attaches a correlation ID to every
// request. An incoming X-Request-ID is propagated, otherwise a fresh UUID
// is generated. The ID is echoed on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(requestIDContextKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		c.Next()
	}
}

// RequestIDFromContext returns the request correlation ID, or empty when the
// middleware did not run.
func RequestIDFromContext(c *gin.Context) string {
	return c.GetString(requestIDContextKey)
}
