// Package metrics instruments the primality components with Prometheus
// counters and exposes runtime memory readings.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics aggregates the Prometheus instruments. Each instance carries its
// own registry, so constructing one per test is safe.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	primalityTests *prometheus.CounterVec
	witnessRounds  prometheus.Counter
	testDuration   prometheus.Histogram
	batchDuration  prometheus.Histogram
	searchSteps    prometheus.Histogram
}

// NewMetrics creates the instrument set on a fresh registry, with the Go
// runtime collector attached.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		handler:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		primalityTests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bignum_primality_tests_total",
			Help: "Primality tests performed, labeled by verdict.",
		}, []string{"verdict"}),
		witnessRounds: factory.NewCounter(prometheus.CounterOpts{
			Name: "bignum_witness_rounds_total",
			Help: "Miller-Rabin witness rounds configured across all tests.",
		}),
		testDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "bignum_primality_test_duration_seconds",
			Help:    "Wall time of individual primality tests.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
		batchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "bignum_primality_batch_duration_seconds",
			Help:    "Wall time of whole primality batches.",
			Buckets: prometheus.ExponentialBuckets(1e-4, 4, 10),
		}),
		searchSteps: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "bignum_prime_search_candidates",
			Help:    "Candidates examined per prime search.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
}

// ObserveTest records one finished primality test.
func (m *Metrics) ObserveTest(prime bool, rounds int, elapsed time.Duration) {
	verdict := "composite"
	if prime {
		verdict = "probably_prime"
	}
	m.primalityTests.WithLabelValues(verdict).Inc()
	m.witnessRounds.Add(float64(rounds))
	m.testDuration.Observe(elapsed.Seconds())
}

// ObserveBatch records the wall time of one whole batch run.
func (m *Metrics) ObserveBatch(elapsed time.Duration) {
	m.batchDuration.Observe(elapsed.Seconds())
}

// ObserveSearch records how many candidates a prime search walked through.
func (m *Metrics) ObserveSearch(candidates int) {
	m.searchSteps.Observe(float64(candidates))
}

// WritePrometheus serves the registry in the Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
