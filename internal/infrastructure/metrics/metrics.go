// Package metrics records catalog lookups and rankings as Prometheus metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"AppRanker/internal/domain"
	"AppRanker/internal/ports"
)

// Metric names as constants for consistency.
const (
	MetricLookupsTotal    = "appranker_lookups_total"
	MetricLookupDuration  = "appranker_lookup_duration_seconds"
	MetricRankingsTotal   = "appranker_rankings_total"
	MetricSimilarityScore = "appranker_similarity_score"
)

// Metrics contains Prometheus collectors for one process.
// All operations are thread-safe.
type Metrics struct {
	registry       *prometheus.Registry
	lookupsTotal   *prometheus.CounterVec
	lookupDuration prometheus.Histogram
	rankingsTotal  *prometheus.CounterVec
	scores         prometheus.Histogram
}

var _ ports.Recorder = (*Metrics)(nil)

// New creates the collectors and registers them with a private registry.
func New() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		lookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricLookupsTotal,
				Help: "Total number of catalog lookups by outcome",
			},
			[]string{"outcome"},
		),
		lookupDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    MetricLookupDuration,
				Help:    "Histogram of catalog lookup duration in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 10.0, 20.0},
			},
		),
		rankingsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricRankingsTotal,
				Help: "Total number of ranking runs by status",
			},
			[]string{"status"},
		),
		scores: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    MetricSimilarityScore,
				Help:    "Distribution of similarity scores of ranked candidates",
				Buckets: prometheus.LinearBuckets(1, 1, 10),
			},
		),
	}

	for _, c := range m.Collectors() {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveLookup counts one lookup and records its latency.
func (m *Metrics) ObserveLookup(outcome string, elapsed time.Duration) {
	m.lookupsTotal.WithLabelValues(outcome).Inc()
	m.lookupDuration.Observe(elapsed.Seconds())
}

// ObserveRanking counts one ranking run and records every candidate score.
func (m *Metrics) ObserveRanking(status string, entries []domain.RankedEntry) {
	m.rankingsTotal.WithLabelValues(status).Inc()
	for _, e := range entries {
		m.scores.Observe(e.Score)
	}
}

// Gatherer exposes the private registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes all metrics in the text exposition format, e.g. for
// the node_exporter textfile collector. An empty path is a no-op.
func (m *Metrics) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}

// Collectors returns all Prometheus collectors for testing.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.lookupsTotal,
		m.lookupDuration,
		m.rankingsTotal,
		m.scores,
	}
}
