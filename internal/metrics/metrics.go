package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "skillswap",
			Subsystem: "exchange",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "skillswap",
			Subsystem: "exchange",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "route"},
	)

	// Conversation sync
	PollTicksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "skillswap",
			Subsystem: "exchange",
			Name:      "poll_ticks_total",
			Help:      "Conversation refresh ticks by result (applied, stale, failed, discarded)",
		},
		[]string{"result"},
	)

	ActiveSyncSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "skillswap",
			Subsystem: "exchange",
			Name:      "active_sync_sessions",
			Help:      "Conversation views currently being kept fresh",
		},
	)

	// Chat writes
	MessagesSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "skillswap",
			Subsystem: "exchange",
			Name:      "messages_sent_total",
			Help:      "Messages persisted by type",
		},
		[]string{"type"},
	)

	ContactRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "skillswap",
			Subsystem: "exchange",
			Name:      "contact_requests_total",
			Help:      "Contact exchange request transitions by status, plus orphaned requests",
		},
		[]string{"status"},
	)

	ContactSubmissionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "skillswap",
			Subsystem: "exchange",
			Name:      "contact_submissions_total",
			Help:      "Contact form submissions stored",
		},
	)
)
