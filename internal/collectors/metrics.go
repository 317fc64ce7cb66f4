package collectors

import (
	"helpscout-metrics/internal/shared/metrics"
)

// metricPagesFetchedTotal counts conversation-page fetches against the
// Help Scout API, labelled by mailbox and by the error code of a failed
// fetch (empty for success). A healthy tick increments this once per page
// per mailbox; a spike in non-empty error_code values means the run was
// aborted and no metrics were reported for that tick.
var (
	metricPagesFetchedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCollector,
			Name:      "pages_fetched_total",
		},
		[]string{metrics.FieldMailboxID, metrics.FieldErrorCode},
	)
)
