package telemetry

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics provides Prometheus metrics for search runs.
type Metrics struct {
	config MetricsConfig

	searchesStarted   *prometheus.CounterVec
	searchesCompleted *prometheus.CounterVec
	searchDuration    *prometheus.HistogramVec

	nodesExpanded   *prometheus.HistogramVec
	maxFrontierSize *prometheus.HistogramVec
	solutionDepth   *prometheus.HistogramVec

	puzzlesRejected *prometheus.CounterVec
	activeSearches  prometheus.Gauge

	registry *prometheus.Registry
	server   *http.Server
}

// NewMetrics creates a new metrics collector. A disabled configuration
// yields a no-op collector.
func NewMetrics(cfg MetricsConfig) (*Metrics, error) {
	if !cfg.Enabled {
		return &Metrics{config: cfg}, nil
	}

	namespace := cfg.Namespace
	registry := prometheus.NewRegistry()

	m := &Metrics{
		config:   cfg,
		registry: registry,

		searchesStarted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "searches_started_total",
				Help:      "Total number of searches started",
			},
			[]string{"heuristic"},
		),
		searchesCompleted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "searches_completed_total",
				Help:      "Total number of searches finished, by outcome",
			},
			[]string{"heuristic", "outcome"},
		),
		searchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_duration_seconds",
				Help:      "Wall-clock duration of searches",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"heuristic"},
		),
		nodesExpanded: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "nodes_expanded",
				Help:      "States expanded per search",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
			},
			[]string{"heuristic"},
		),
		maxFrontierSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "max_frontier_size",
				Help:      "Peak frontier population per search",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
			},
			[]string{"heuristic"},
		),
		solutionDepth: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "solution_depth",
				Help:      "Move count of found solutions",
				Buckets:   prometheus.LinearBuckets(0, 8, 12),
			},
			[]string{"heuristic"},
		),
		puzzlesRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "puzzles_rejected_total",
				Help:      "Puzzles rejected at validation, by reason",
			},
			[]string{"reason"},
		),
		activeSearches: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "active_searches",
				Help:      "Number of searches currently running",
			},
		),
	}

	collectors := []prometheus.Collector{
		m.searchesStarted, m.searchesCompleted, m.searchDuration,
		m.nodesExpanded, m.maxFrontierSize, m.solutionDepth,
		m.puzzlesRejected, m.activeSearches,
	}
	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}

	return m, nil
}

// SearchStarted records the start of a search.
func (m *Metrics) SearchStarted(heuristic string) {
	if m.registry == nil {
		return
	}
	m.searchesStarted.WithLabelValues(heuristic).Inc()
	m.activeSearches.Inc()
}

// SearchCompleted records a finished search with its outcome and
// statistics. Outcome is one of solved, unsolvable, budget, cancelled,
// exhausted.
func (m *Metrics) SearchCompleted(heuristic, outcome string, duration time.Duration, expanded, maxFrontier, depth int) {
	if m.registry == nil {
		return
	}
	m.searchesCompleted.WithLabelValues(heuristic, outcome).Inc()
	m.searchDuration.WithLabelValues(heuristic).Observe(duration.Seconds())
	if outcome == "unsolvable" {
		return
	}
	m.activeSearches.Dec()
	m.nodesExpanded.WithLabelValues(heuristic).Observe(float64(expanded))
	m.maxFrontierSize.WithLabelValues(heuristic).Observe(float64(maxFrontier))
	if outcome == "solved" {
		m.solutionDepth.WithLabelValues(heuristic).Observe(float64(depth))
	}
}

// PuzzleRejected records a validation rejection.
func (m *Metrics) PuzzleRejected(reason string) {
	if m.registry == nil {
		return
	}
	m.puzzlesRejected.WithLabelValues(reason).Inc()
}

// Handler returns the HTTP handler serving the registry, or nil when
// metrics are disabled.
func (m *Metrics) Handler() http.Handler {
	if m.registry == nil {
		return nil
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// StartServer serves the metrics endpoint on the configured listen
// address. It is a no-op when metrics are disabled or no address is
// configured.
func (m *Metrics) StartServer() error {
	if m.registry == nil || m.config.ListenAddress == "" {
		return nil
	}
	path := m.config.Path
	if path == "" {
		path = "/metrics"
	}
	mux := http.NewServeMux()
	mux.Handle(path, m.Handler())
	m.server = &http.Server{Addr: m.config.ListenAddress, Handler: mux}
	go func() {
		_ = m.server.ListenAndServe()
	}()
	return nil
}

// Close shuts down the metrics server if one was started.
func (m *Metrics) Close() error {
	if m.server == nil {
		return nil
	}
	return m.server.Close()
}
