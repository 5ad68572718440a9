package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerRequestID = "X-Request-ID"
	ctxRequestID    = "request_id"
)

// RequestID propagates the caller's X-Request-ID or assigns a fresh one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(ctxRequestID, requestID)
		c.Header(headerRequestID, requestID)

		c.Next()
	}
}
