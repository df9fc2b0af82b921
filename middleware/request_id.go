package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const requestIDKey = "request_id"

// RequestID tags every request with a uuid so server-side log lines can be
// correlated without echoing internal detail to the client.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// RequestLogger returns a log entry carrying the request id.
func RequestLogger(c *gin.Context) *logrus.Entry {
	if id, ok := c.Get(requestIDKey); ok {
		return logrus.WithField(requestIDKey, id)
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
