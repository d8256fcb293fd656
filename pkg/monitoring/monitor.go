package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"method", "endpoint"},
	)

	EventsRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "learning_events_recorded_total",
			Help: "Learning event records appended to the local log",
		},
		[]string{"verb"},
	)

	TelemetryEmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "learning_events_emitted_total",
			Help: "Statement emissions to the learning record store",
		},
		[]string{"mode", "outcome"},
	)

	StateWriteFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "state_write_failures_total",
			Help: "Failed write-backs of persisted aggregates",
		},
		[]string{"aggregate"},
	)

	StepTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "module_step_transitions_total",
			Help: "Module workflow transitions by target step and outcome",
		},
		[]string{"step", "outcome"},
	)
)

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			RequestDuration,
			EventsRecorded,
			TelemetryEmissions,
			StateWriteFailures,
			StepTransitions,
		)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
