package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the campushub server
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Store Metrics
	SnapshotReloads  prometheus.Counter
	SnapshotCacheHit prometheus.CounterVec

	// Business Metrics
	LoginsTotal             prometheus.CounterVec
	SignupsTotal            prometheus.Counter
	EventRegistrationsTotal prometheus.Counter
	ClubRegistrationsTotal  prometheus.Counter
	ClubDecisionsTotal      prometheus.CounterVec
	ExportsTotal            prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campushub_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "campushub_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "campushub_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		SnapshotReloads: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "campushub_snapshot_reloads_total",
				Help: "Total directory snapshot reloads from the backing store",
			},
		),
		SnapshotCacheHit: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campushub_snapshot_cache_total",
				Help: "Directory snapshot cache lookups by result",
			},
			[]string{"result"},
		),

		LoginsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campushub_logins_total",
				Help: "Total login attempts by outcome",
			},
			[]string{"outcome"},
		),
		SignupsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "campushub_signups_total",
				Help: "Total successful student signups",
			},
		),
		EventRegistrationsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "campushub_event_registrations_total",
				Help: "Total event registrations created",
			},
		),
		ClubRegistrationsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "campushub_club_registrations_total",
				Help: "Total club membership requests created",
			},
		),
		ClubDecisionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campushub_club_decisions_total",
				Help: "Total club registration decisions by outcome",
			},
			[]string{"decision"},
		),
		ExportsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "campushub_registrant_exports_total",
				Help: "Total registrant CSV exports generated",
			},
		),
	}
}
