package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLog writes one line per request after the chain (and the error
// handler) has run, so the logged status is the one the client saw.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)
		path := c.Request.URL.Path

		switch {
		case status >= http.StatusInternalServerError:
			m.l.Errorf(ctx, "%s %s %d %s %s", c.Request.Method, path, status, latency, c.ClientIP())
		case status >= http.StatusBadRequest:
			m.l.Warnf(ctx, "%s %s %d %s %s", c.Request.Method, path, status, latency, c.ClientIP())
		default:
			m.l.Infof(ctx, "%s %s %d %s %s", c.Request.Method, path, status, latency, c.ClientIP())
		}
	}
}
