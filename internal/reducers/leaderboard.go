package reducers

import (
	"sort"
	"time"

	"helpscout-metrics/internal/models"
	"helpscout-metrics/internal/sinks"
	"helpscout-metrics/internal/windows"
)

const (
	metricFirstPlaceOwner  = "helpscout first place owner"
	metricFirstPlaceClosed = "helpscout first place closed"

	metricSecondPlaceOwner  = "helpscout second place owner"
	metricSecondPlaceClosed = "helpscout second place closed"

	metricClosedTodayByOwner = "helpscout tickets closed today by owner"
)

// TodayBreakdown reports who closed tickets today and ranks the top two.
//
// "Today" is the local calendar day of now, 00:00:00 through 23:59:59.
// Tickets closed by an unassigned owner are skipped. Ranking is a stable
// sort descending by count; owners with equal counts keep the order in
// which they first appeared in the collection. First- and second-place
// metrics are only written when that many distinct owners closed tickets;
// the full breakdown is written regardless.
func TodayBreakdown(sink sinks.Sink, convos []models.Conversation, now time.Time) {
	today := windows.Range{Start: windows.DayStart(now), End: windows.DayEnd(now)}

	breakdown := sinks.Breakdown{}
	var order []string // first-seen owner order, the tie-break for ranking

	for _, convo := range windows.ByClosedAt(convos, today) {
		if convo.Owner == nil {
			continue
		}
		name := convo.Owner.DisplayName()
		if _, seen := breakdown[name]; !seen {
			order = append(order, name)
		}
		breakdown[name]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return breakdown[order[i]] > breakdown[order[j]]
	})

	if len(order) > 0 {
		sink.Set(metricFirstPlaceOwner, order[0])
		sink.Set(metricFirstPlaceClosed, breakdown[order[0]])
	}
	if len(order) > 1 {
		sink.Set(metricSecondPlaceOwner, order[1])
		sink.Set(metricSecondPlaceClosed, breakdown[order[1]])
	}

	sink.Set(metricClosedTodayByOwner, breakdown)
}
