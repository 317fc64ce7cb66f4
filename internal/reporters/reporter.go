// Package reporters wires the collector to the reducers: one Report call
// is one reporting tick.
package reporters

import (
	"context"
	"time"

	"helpscout-metrics/internal/collectors"
	"helpscout-metrics/internal/reducers"
	"helpscout-metrics/internal/shared/loggers"
	"helpscout-metrics/internal/shared/metrics"
	"helpscout-metrics/internal/shared/svcerrors"
	"helpscout-metrics/internal/sinks"
)

//go:generate mockgen -source=reporter.go -destination=./mocks/reporter_mock.go -package=mocks
type Reporter interface {
	// Report fetches all configured mailboxes and writes the reduced
	// metrics to sink. If the fetch fails, nothing is written for this
	// tick: no metrics beat partial metrics, and the next tick
	// self-corrects.
	Report(ctx context.Context, sink sinks.Sink) *svcerrors.ServiceError
}

type reporter struct {
	collector collectors.Collector
	mailboxes []int64
}

func NewReporter(collector collectors.Collector, mailboxes []int64) Reporter {
	return &reporter{collector: collector, mailboxes: mailboxes}
}

func (r *reporter) Report(ctx context.Context, sink sinks.Sink) *svcerrors.ServiceError {
	logger := loggers.Ctx(ctx)
	start := time.Now()

	convos, err := r.collector.Collect(ctx)
	if err != nil {
		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
		}

		logger.Error().
			Err(svcErr).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Ints64(loggers.FieldMailboxes, r.mailboxes).
			Msg("failed to query helpscout, skipping metrics for this tick")

		metricReportRunsTotal.WithLabelValues(svcErr.Code).Inc()
		return svcErr
	}

	now := time.Now()
	reducers.TotalActive(sink, convos)
	reducers.Weekly(sink, convos, now)
	reducers.OldestBreakdown(sink, convos, now)
	reducers.TodayBreakdown(sink, convos, now)

	metricReportRunsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricReportDuration.WithLabelValues().Observe(time.Since(start).Seconds())

	logger.Info().
		Int("conversations", len(convos)).
		Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
		Msg("report tick completed")
	return nil
}
