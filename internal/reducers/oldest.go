package reducers

import (
	"fmt"
	"time"

	"helpscout-metrics/internal/models"
	"helpscout-metrics/internal/sinks"
)

const (
	metricActiveByOwner = "helpscout active tickets by owner"
	metricOldestTime    = "helpscout oldest ticket time"
	metricOldestOwner   = "helpscout oldest ticket owner"
	metricOldestAge     = "helpscout oldest ticket timeago"
	metricOldestShaming = "helpscout oldest ticket shaming"
)

// OldestBreakdown reports the per-owner breakdown of active tickets, and
// singles out the ticket that has gone longest without a response.
//
// Only active tickets with an assigned owner participate. The oldest
// ticket is the one with the smallest userModifiedAt; on a tie the first
// one encountered wins (strict less-than comparison, collection order).
// When no active owned ticket exists, the breakdown is still reported
// (empty) and the four oldest-ticket metrics are omitted entirely.
func OldestBreakdown(sink sinks.Sink, convos []models.Conversation, now time.Time) {
	breakdown := sinks.Breakdown{}

	var oldestAt time.Time
	oldestOwner := ""
	found := false

	for i := range convos {
		convo := &convos[i]
		if !convo.IsActive() || convo.Owner == nil {
			continue
		}

		name := convo.Owner.DisplayName()
		breakdown[name]++

		modifiedAt := convo.UserModifiedAt.Time
		if !found || modifiedAt.Before(oldestAt) {
			found = true
			oldestAt = modifiedAt
			oldestOwner = name
		}
	}

	sink.Set(metricActiveByOwner, breakdown)

	if !found {
		return
	}

	age := RelativeAge(oldestAt, now)
	sink.Set(metricOldestTime, oldestAt)
	sink.Set(metricOldestOwner, oldestOwner)
	sink.Set(metricOldestAge, age)
	sink.Set(metricOldestShaming, fmt.Sprintf("%s: %s of no response.", oldestOwner, age))
}
