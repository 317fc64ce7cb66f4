package reporters

import (
	"helpscout-metrics/internal/shared/metrics"
)

// metricReportRunsTotal counts reporting ticks by outcome. The error_code
// label is empty for a successful tick and carries the aborting error's
// stable code otherwise; a tick that failed wrote no metrics at all.
var (
	metricReportRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "runs_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricReportDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "run_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{},
	)
)
