package monitoring

import (
	"strconv"
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
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// AnswersIngested counts successful answer writes per submission path.
	AnswersIngested = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "answers_ingested_total",
			Help: "Total number of answer records written, by submission path",
		},
		[]string{"path"},
	)

	ResultsMaterialized = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "results_materialized_total",
			Help: "Total number of result snapshots written",
		},
	)

	ScheduleClients = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "schedule_ws_clients",
			Help: "Currently connected schedule websocket clients",
		},
	)

	ScheduleEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schedule_events_total",
			Help: "Schedule events published, by type",
		},
		[]string{"type"},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(AnswersIngested)
	prometheus.MustRegister(ResultsMaterialized)
	prometheus.MustRegister(ScheduleClients)
	prometheus.MustRegister(ScheduleEvents)
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
