// Package metrics provides Prometheus metrics for the podium ranking service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the podium service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Reorder metrics.
	reorderCommits  prometheus.Counter
	reorderNoops    prometheus.Counter
	reorderRejected prometheus.Counter

	// Episode metrics.
	episodesCaptured prometheus.Counter
	episodesDeleted  prometheus.Counter

	// Read-side metrics.
	comparisons      prometheus.Counter
	trajectoryBuilds prometheus.Counter

	// Live state gauges.
	boardCount prometheus.Gauge
	cardCount  prometheus.Gauge

	// HTTP metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "podium",
		subsystem:        "ranking",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.reorderCommits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reorder_commits_total",
		Help:      "Total number of reorders that changed a board's order",
	})

	m.reorderNoops = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reorder_noops_total",
		Help:      "Total number of reorders that were identity moves and skipped persistence",
	})

	m.reorderRejected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reorder_rejected_total",
		Help:      "Total number of reorders rejected for an out-of-range index",
	})

	m.episodesCaptured = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "episodes_captured_total",
		Help:      "Total number of snapshots captured",
	})

	m.episodesDeleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "episodes_deleted_total",
		Help:      "Total number of snapshots deleted",
	})

	m.comparisons = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "comparisons_total",
		Help:      "Total number of movement comparisons computed",
	})

	m.trajectoryBuilds = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "trajectory_builds_total",
		Help:      "Total number of trajectory computations",
	})

	m.boardCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "board_count",
		Help:      "Current number of boards",
	})

	m.cardCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "card_count",
		Help:      "Current number of cards across all boards",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by endpoint, method and status code",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})
}

// RecordReorderCommit increments the committed-reorder counter.
func RecordReorderCommit() {
	globalManager.reorderCommits.Inc()
}

// RecordReorderNoop increments the no-op reorder counter.
func RecordReorderNoop() {
	globalManager.reorderNoops.Inc()
}

// RecordReorderRejected increments the rejected-reorder counter.
func RecordReorderRejected() {
	globalManager.reorderRejected.Inc()
}

// RecordEpisodeCaptured increments the captured-episode counter.
func RecordEpisodeCaptured() {
	globalManager.episodesCaptured.Inc()
}

// RecordEpisodeDeleted increments the deleted-episode counter.
func RecordEpisodeDeleted() {
	globalManager.episodesDeleted.Inc()
}

// RecordComparison increments the comparison counter.
func RecordComparison() {
	globalManager.comparisons.Inc()
}

// RecordTrajectoryBuild increments the trajectory counter.
func RecordTrajectoryBuild() {
	globalManager.trajectoryBuilds.Inc()
}

// UpdateBoardCount sets the live board gauge.
func UpdateBoardCount(count int) {
	globalManager.boardCount.Set(float64(count))
}

// UpdateCardCount sets the live card gauge.
func UpdateCardCount(count int) {
	globalManager.cardCount.Set(float64(count))
}

// RecordHTTPRequest records one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records the duration of one HTTP request.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
