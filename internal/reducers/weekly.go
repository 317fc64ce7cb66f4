package reducers

import (
	"math"
	"time"

	"helpscout-metrics/internal/models"
	"helpscout-metrics/internal/sinks"
	"helpscout-metrics/internal/windows"
)

const (
	metricModifiedAvg      = "helpscout tickets modified avg"
	metricModifiedLastWeek = "helpscout tickets modified last week"
	metricModifiedPrevWeek = "helpscout tickets modified 2 weeks ago"

	metricCreatedAvg      = "helpscout tickets created avg"
	metricCreatedLastWeek = "helpscout tickets created last week"
	metricCreatedPrevWeek = "helpscout tickets created 2 weeks ago"
)

// Weekly reports ticket volume over the trailing two weeks, for both
// userModifiedAt and createdAt. Week boundaries are calendar-day shifts of
// now, so both ranges share the weekAgo endpoint; a ticket timestamped
// exactly there counts in both weeks.
func Weekly(sink sinks.Sink, convos []models.Conversation, now time.Time) {
	weekAgo := windows.DaysAgo(now, 7)
	twoWeeksAgo := windows.DaysAgo(now, 14)

	lastWeek := windows.Range{Start: weekAgo, End: now}
	previousWeek := windows.Range{Start: twoWeeksAgo, End: weekAgo}

	modified := len(windows.ByUserModifiedAt(convos, lastWeek))
	sink.Set(metricModifiedAvg, dailyAverage(modified))
	sink.Set(metricModifiedLastWeek, modified)
	sink.Set(metricModifiedPrevWeek, len(windows.ByUserModifiedAt(convos, previousWeek)))

	created := len(windows.ByCreatedAt(convos, lastWeek))
	sink.Set(metricCreatedAvg, dailyAverage(created))
	sink.Set(metricCreatedLastWeek, created)
	sink.Set(metricCreatedPrevWeek, len(windows.ByCreatedAt(convos, previousWeek)))
}

// dailyAverage is the weekly count divided by 7, rounded to the nearest
// whole ticket.
func dailyAverage(weekly int) int {
	return int(math.Round(float64(weekly) / 7))
}
