// internal/middleware/request_id.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-Id"

// RequestID reuses an inbound request id or generates one, and echoes it to
// the client so a failed price lookup can be traced back to a log line.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Writer.Header().Set(HeaderRequestID, rid)
		c.Set("request_id", rid)
		c.Next()
	}
}
