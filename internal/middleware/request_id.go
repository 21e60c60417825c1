package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"challenge-admin/pkg/log"
)

const maxRequestIDLen = 128

// RequestID propagates or assigns X-Request-ID and puts it in the request
// context for the logger.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
