package server

import (
	"time"

	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// requestIDKey is the gin context key holding the request id
const requestIDKey = "request_id"

// RequestIDMiddleware tags each request with a unique id, honoring an
// X-Request-ID header when the client supplies one
func RequestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = utils.GenerateID()
	}

	c.Set(requestIDKey, requestID)
	c.Writer.Header().Set("X-Request-ID", requestID)

	c.Next()
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetString(requestIDKey),
	})
}
