// Package metrics registers the application's prometheus collectors and the gin
// instrumentation middleware.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	eventsRecordedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_events_recorded_total",
			Help: "Economic events committed to the ledger, by event type.",
		},
		[]string{"event_type"},
	)

	eventsRejectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_events_rejected_total",
			Help: "Event recordings rejected before any write, by reason.",
		},
		[]string{"reason"},
	)
)

// Init registers all collectors with the default registry.
func Init() {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDuration, eventsRecordedTotal, eventsRejectedTotal)
}

// Handler exposes the prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// Instrument measures request counts and latencies per route.
func Instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}

// EventRecorded counts a committed ledger event.
func EventRecorded(eventType string) {
	eventsRecordedTotal.WithLabelValues(eventType).Inc()
}

// EventRejected counts a recording rejected before any write.
func EventRejected(reason string) {
	eventsRejectedTotal.WithLabelValues(reason).Inc()
}
