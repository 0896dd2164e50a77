package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aulaflow/academy-backend/internal/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an id (honoring an inbound header) and
// logs the request line with it. Generation requests can run for minutes, so
// a correlating id in the logs matters more here than usual.
func RequestID(log *logger.Logger) gin.HandlerFunc {
	reqLog := log.With("middleware", "RequestID")
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Set("request_id", id)

		reqLog.Debug("Request started", "request_id", id, "method", c.Request.Method, "path", c.Request.URL.Path)
		c.Next()
		reqLog.Debug("Request finished", "request_id", id, "status", c.Writer.Status())
	}
}
