// Package metrics exposes the Prometheus collectors shared by the cache,
// the orchestrator and the pipeline (which records the validation and
// planning counters). The constructor follows the
// corpus's nil-safe, test-isolated-registry convention (grounded on
// jordigilh-kubernaut's metrics.NewMetricsWithRegistry): callers pass their
// own *prometheus.Registry so production code registers against the
// process's default registry while tests register against a throwaway one,
// avoiding the "duplicate metrics collector registration" panic when tests
// run in the same binary.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles every collector the pipeline writes to.
type Metrics struct {
	registry *prometheus.Registry

	CacheHits   *prometheus.CounterVec // labels: endpoint
	CacheMisses *prometheus.CounterVec // labels: endpoint
	CacheSets   *prometheus.CounterVec // labels: endpoint
	CacheTTL    *prometheus.HistogramVec

	ValidationTotal      *prometheus.CounterVec // labels: outcome (complete|clarification)
	ClarificationsTotal  prometheus.Counter
	PlansGenerated       prometheus.Counter
	PlanAPICallsPlanned  prometheus.Histogram

	APICallsTotal   *prometheus.CounterVec // labels: endpoint, outcome
	APICallDuration *prometheus.HistogramVec
	RetryTotal      *prometheus.CounterVec // labels: endpoint
	BreakerState    *prometheus.GaugeVec   // labels: state (0/1 per state name)
}

// New builds a Metrics bundle registered against reg. Pass
// prometheus.NewRegistry() in tests; pass a shared registry (or
// prometheus.DefaultRegisterer's registry) in production.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		CacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lucide",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Cache hits per endpoint.",
		}, []string{"endpoint"}),
		CacheMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lucide",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Cache misses per endpoint.",
		}, []string{"endpoint"}),
		CacheSets: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lucide",
			Subsystem: "cache",
			Name:      "sets_total",
			Help:      "Cache writes per endpoint.",
		}, []string{"endpoint"}),
		CacheTTL: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lucide",
			Subsystem: "cache",
			Name:      "ttl_seconds",
			Help:      "Distribution of effective TTL assigned to cache writes.",
			Buckets:   []float64{0, 30, 60, 300, 600, 3600, 86400},
		}, []string{"endpoint"}),

		ValidationTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lucide",
			Subsystem: "validator",
			Name:      "requests_total",
			Help:      "Validation outcomes.",
		}, []string{"outcome"}),
		ClarificationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "lucide",
			Subsystem: "validator",
			Name:      "clarifications_total",
			Help:      "Clarification requests emitted.",
		}),
		PlansGenerated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "lucide",
			Subsystem: "planner",
			Name:      "plans_generated_total",
			Help:      "Execution plans produced.",
		}),
		PlanAPICallsPlanned: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lucide",
			Subsystem: "planner",
			Name:      "api_calls_planned",
			Help:      "Number of API calls a generated plan contains.",
			Buckets:   prometheus.LinearBuckets(0, 1, 10),
		}),

		APICallsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lucide",
			Subsystem: "orchestrator",
			Name:      "api_calls_total",
			Help:      "Upstream API calls issued, by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		APICallDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lucide",
			Subsystem: "orchestrator",
			Name:      "api_call_duration_seconds",
			Help:      "Per-call duration, including retries.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		RetryTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lucide",
			Subsystem: "orchestrator",
			Name:      "retries_total",
			Help:      "Retry attempts, by endpoint.",
		}, []string{"endpoint"}),
		BreakerState: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "lucide",
			Subsystem: "orchestrator",
			Name:      "breaker_state",
			Help:      "Circuit breaker state indicator (1 = current state, 0 otherwise).",
		}, []string{"state"}),
	}
}

// Handler exposes the registry over HTTP in the Prometheus exposition
// format, for the embedder to mount wherever it serves metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
