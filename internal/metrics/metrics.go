package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "fantapiazza",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fantapiazza",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fantapiazza",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	ledgerOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fantapiazza",
			Subsystem: "ledger",
			Name:      "operations_total",
			Help:      "Score ledger operations by kind and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	ledgerPoints = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fantapiazza",
			Subsystem: "ledger",
			Name:      "points_total",
			Help:      "Absolute points moved by the ledger, split by sign.",
		},
		[]string{"sign"},
	)

	ledgerDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fantapiazza",
			Subsystem: "ledger",
			Name:      "operation_duration_seconds",
			Help:      "Duration of score ledger transactions.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"operation"},
	)

	reconcileRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fantapiazza",
			Subsystem: "reconcile",
			Name:      "runs_total",
			Help:      "League score reconciliation runs.",
		},
		[]string{"success"},
	)

	reconcileRepaired = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fantapiazza",
			Subsystem: "reconcile",
			Name:      "repaired_rows_total",
			Help:      "League score rows that were found drifted and rewritten.",
		},
	)

	teamWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fantapiazza",
			Subsystem: "teams",
			Name:      "writes_total",
			Help:      "Team create and update attempts by outcome.",
		},
		[]string{"operation", "outcome"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		ledgerOperations,
		ledgerPoints,
		ledgerDuration,
		reconcileRuns,
		reconcileRepaired,
		teamWrites,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request count and latency per matched gin route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := strings.ToUpper(c.Request.Method)

		httpRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// RecordLedgerOperation records one ledger transaction. points is the signed
// amount applied to the artist total, zero when the operation failed.
func RecordLedgerOperation(operation string, points int, duration time.Duration, err error) {
	if duration <= 0 {
		duration = time.Millisecond
	}
	ledgerOperations.WithLabelValues(operation, outcome(err)).Inc()
	ledgerDuration.WithLabelValues(operation).Observe(duration.Seconds())

	if err != nil || points == 0 {
		return
	}
	if points > 0 {
		ledgerPoints.WithLabelValues("bonus").Add(float64(points))
	} else {
		ledgerPoints.WithLabelValues("malus").Add(float64(-points))
	}
}

// RecordReconcile records one reconciliation run.
func RecordReconcile(repaired int, err error) {
	result := "true"
	if err != nil {
		result = "false"
	}
	reconcileRuns.WithLabelValues(result).Inc()
	if repaired > 0 {
		reconcileRepaired.Add(float64(repaired))
	}
}

// RecordTeamWrite records a team create or update attempt.
func RecordTeamWrite(operation string, err error) {
	teamWrites.WithLabelValues(operation, outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
