package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware creates a Gin middleware for metrics collection
func Middleware(metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method

		// Process request
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		metrics.RecordHTTPRequest(method, path, status, time.Since(start))
	}
}

// Timer measures a state's Enter action
type Timer struct {
	start   time.Time
	metrics *Metrics
	state   string
}

// NewTimer creates a new timer
func NewTimer(metrics *Metrics, state string) *Timer {
	return &Timer{
		start:   time.Now(),
		metrics: metrics,
		state:   state,
	}
}

// Stop stops the timer and records the transition
func (t *Timer) Stop(status string) {
	t.metrics.RecordTransition(t.state, status, time.Since(t.start))
}
