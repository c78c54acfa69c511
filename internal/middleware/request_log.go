package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogger emits one entry per request: 5xx at error, 4xx at warn,
// everything else at info.
func RequestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if log == nil {
			return
		}

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		entry := log.WithFields(logrus.Fields{
			"method":      strings.ToUpper(c.Request.Method),
			"path":        path,
			"status":      status,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		if id := GetRequestID(c); id != "" {
			entry = entry.WithField("request_id", id)
		}
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			entry.Error("HTTP request")
		case status >= 400:
			entry.Warn("HTTP request")
		default:
			entry.Info("HTTP request")
		}
	}
}
