// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Source labels for StageResolutions.
const (
	SourceOracle   = "oracle"
	SourceFallback = "fallback"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_requests_total",
			Help: "Handled chat requests by classified intent and reply language",
		},
		[]string{"intent", "language"},
	)

	// StageResolutions counts which tier answered each pipeline stage.
	StageResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_stage_resolutions_total",
			Help: "Pipeline stage answers by source (oracle or fallback)",
		},
		[]string{"stage", "source"},
	)

	PolishOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_polish_total",
			Help: "Rephrasing attempts by outcome",
		},
		[]string{"outcome"},
	)

	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assistant_stage_duration_seconds",
			Help:    "Duration of each pipeline stage in seconds",
			Buckets: []float64{.005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"stage"},
	)

	DataErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_data_errors_total",
			Help: "Data-access failures surfaced as empty results",
		},
		[]string{"operation"},
	)

	Notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_notifications_total",
			Help: "Supplier demand notifications by channel and status",
		},
		[]string{"channel", "status"},
	)

	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)
)
