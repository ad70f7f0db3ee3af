package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	scenariosStored prometheus.Counter
	errorsTotal     *prometheus.CounterVec
	cacheLookups    *prometheus.CounterVec
	latency         *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		scenariosStored: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "regimeeye_scenarios_stored_total",
				Help: "Total number of stress-test scenarios persisted to the audit store",
			},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "regimeeye_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		cacheLookups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "regimeeye_cache_lookups_total",
				Help: "Cache lookups by outcome",
			},
			[]string{"key", "outcome"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "regimeeye_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordScenarioStored records a persisted scenario document.
func (r *Recorder) RecordScenarioStored() {
	r.scenariosStored.Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordCacheHit records a cache hit for a key class.
func (r *Recorder) RecordCacheHit(key string) {
	r.cacheLookups.WithLabelValues(key, "hit").Inc()
}

// RecordCacheMiss records a cache miss for a key class.
func (r *Recorder) RecordCacheMiss(key string) {
	r.cacheLookups.WithLabelValues(key, "miss").Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
