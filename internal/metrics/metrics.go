// Package metrics defines Prometheus metrics for hela-notan.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hn"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	RateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	})

	HTTPPanicsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_panics_total",
		Help:      "Total number of handler panics recovered.",
	})
)

// Health metrics.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last liveness check succeeded.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last readiness check succeeded.",
	})
)

// Model store metrics.
var (
	ModelRefreshesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "model_refreshes_total",
		Help:      "Total number of successful regression snapshot fetches.",
	})

	ModelRefreshFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "model_refresh_failures_total",
		Help:      "Total number of failed regression snapshot fetches.",
	})

	ModelCompileFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "model_compile_failures_total",
		Help:      "Total number of model entries skipped because they failed to compile.",
	})

	ModelsLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "models_loaded",
		Help:      "Number of compiled models in the current snapshot.",
	})

	ModelSnapshotTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "model_snapshot_timestamp",
		Help:      "Unix timestamp of the current regression snapshot fetch.",
	})
)

// Deal and ranking metrics.
var (
	DealClassificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deal_classifications_total",
		Help:      "Total number of listings classified, by deal rating.",
	}, []string{"rating"})

	RankingRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ranking_requests_total",
		Help:      "Total number of listing queries, by query strategy.",
	}, []string{"mode"})

	RankingCandidates = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ranking_candidates",
		Help:      "Number of candidate listings scored per deal-aware query.",
		Buckets:   prometheus.ExponentialBuckets(10, 2, 12),
	})

	RankingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ranking_duration_seconds",
		Help:      "Duration of listing queries in seconds, by query strategy.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"mode"})
)

// TCO metrics.
var (
	TCOComputationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tco_computations_total",
		Help:      "Total number of ownership-cost computations, by price source.",
	}, []string{"source"})
)

// Summary job metrics.
var (
	SummaryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "summary_duration_seconds",
		Help:      "Duration of summary refresh runs in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	SummaryErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "summary_errors_total",
		Help:      "Total number of failed summary refresh runs.",
	})

	SummaryLastSuccessTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "summary_last_success_timestamp",
		Help:      "Unix timestamp of the last successful summary refresh.",
	})

	SchedulerNextSummaryTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_summary_timestamp",
		Help:      "Unix timestamp of the next scheduled summary refresh.",
	})
)
