package reducers

import (
	"testing"
	"time"

	"helpscout-metrics/internal/models"
	"helpscout-metrics/internal/sinks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closedToday(owner string, now time.Time) models.Conversation {
	return models.Conversation{
		Status:   "closed",
		Owner:    owned(owner),
		ClosedAt: at(now.Add(-time.Hour)),
	}
}

func TestTodayBreakdown_RanksOwners(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 17, 12, 0, 0, 0, time.UTC)

	convos := []models.Conversation{
		closedToday("Jill", now),
		closedToday("Jack", now),
		closedToday("Jack", now),
		closedToday("Jack", now),
		closedToday("Jill", now),
		closedToday("Pat", now),
	}

	sink := sinks.NewSnapshot()
	TodayBreakdown(sink, convos, now)
	values := sink.Values()

	assert.Equal(t, "Jack", values[metricFirstPlaceOwner])
	assert.Equal(t, 3, values[metricFirstPlaceClosed])
	assert.Equal(t, "Jill", values[metricSecondPlaceOwner])
	assert.Equal(t, 2, values[metricSecondPlaceClosed])
	assert.Equal(t, sinks.Breakdown{"Jack": 3, "Jill": 2, "Pat": 1}, values[metricClosedTodayByOwner])
}

func TestTodayBreakdown_TieKeepsFirstSeenOrder(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 17, 12, 0, 0, 0, time.UTC)

	// A:3, B:3, C:1 — first and second must be A then B, never C.
	convos := []models.Conversation{
		closedToday("A", now),
		closedToday("B", now),
		closedToday("A", now),
		closedToday("B", now),
		closedToday("C", now),
		closedToday("A", now),
		closedToday("B", now),
	}

	sink := sinks.NewSnapshot()
	TodayBreakdown(sink, convos, now)
	values := sink.Values()

	assert.Equal(t, "A", values[metricFirstPlaceOwner], "equal counts keep first-seen order")
	assert.Equal(t, "B", values[metricSecondPlaceOwner])
	assert.Equal(t, 3, values[metricFirstPlaceClosed])
	assert.Equal(t, 3, values[metricSecondPlaceClosed])
}

func TestTodayBreakdown_SingleOwnerOmitsSecondPlace(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 17, 12, 0, 0, 0, time.UTC)

	convos := []models.Conversation{
		closedToday("Jack", now),
		closedToday("Jack", now),
	}

	sink := sinks.NewSnapshot()
	TodayBreakdown(sink, convos, now)
	values := sink.Values()

	assert.Equal(t, "Jack", values[metricFirstPlaceOwner])
	assert.Equal(t, 2, values[metricFirstPlaceClosed])
	assert.NotContains(t, values, metricSecondPlaceOwner, "second place is absent, not zero")
	assert.NotContains(t, values, metricSecondPlaceClosed)
}

func TestTodayBreakdown_OnlyTodaysClosures(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 17, 12, 0, 0, 0, time.UTC)

	convos := []models.Conversation{
		closedToday("Jack", now),
		// closed yesterday
		{Status: "closed", Owner: owned("Jill"), ClosedAt: at(now.AddDate(0, 0, -1))},
		// never closed, even though modified today
		{Status: "active", Owner: owned("Pat"), UserModifiedAt: at(now)},
		// closed today but unassigned
		{Status: "closed", ClosedAt: at(now.Add(-2 * time.Hour))},
	}

	sink := sinks.NewSnapshot()
	TodayBreakdown(sink, convos, now)
	values := sink.Values()

	assert.Equal(t, sinks.Breakdown{"Jack": 1}, values[metricClosedTodayByOwner])
}

func TestTodayBreakdown_NoClosures(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 17, 12, 0, 0, 0, time.UTC)

	sink := sinks.NewSnapshot()
	TodayBreakdown(sink, nil, now)
	values := sink.Values()

	require.Contains(t, values, metricClosedTodayByOwner)
	assert.Equal(t, sinks.Breakdown{}, values[metricClosedTodayByOwner])
	assert.NotContains(t, values, metricFirstPlaceOwner)
	assert.NotContains(t, values, metricSecondPlaceOwner)
}

func TestTodayBreakdown_DayBoundariesInclusive(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 17, 12, 0, 0, 0, time.UTC)

	convos := []models.Conversation{
		{Status: "closed", Owner: owned("Early"), ClosedAt: at(time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC))},
		{Status: "closed", Owner: owned("Late"), ClosedAt: at(time.Date(2026, 8, 17, 23, 59, 59, 0, time.UTC))},
	}

	sink := sinks.NewSnapshot()
	TodayBreakdown(sink, convos, now)

	assert.Equal(t, sinks.Breakdown{"Early": 1, "Late": 1}, sink.Values()[metricClosedTodayByOwner])
}
