package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const unmatchedRoute = "unmatched"

// Middleware creates a Gin middleware for metrics collection.
// Paths are labelled by route template to bound cardinality.
func Middleware(metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = unmatchedRoute
		}
		size := int64(c.Writer.Size())
		if size < 0 {
			size = 0
		}
		metrics.RecordHTTPRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
			size,
		)
	}
}

// Timer measures tool execution duration
type Timer struct {
	start   time.Time
	metrics *Metrics
	service string
	tool    string
}

// NewTimer creates a new timer
func NewTimer(metrics *Metrics, service, tool string) *Timer {
	return &Timer{
		start:   time.Now(),
		metrics: metrics,
		service: service,
		tool:    tool,
	}
}

// Stop stops the timer and records the duration
func (t *Timer) Stop(status string) {
	t.metrics.RecordToolCall(t.service, t.tool, status, time.Since(t.start))
}
