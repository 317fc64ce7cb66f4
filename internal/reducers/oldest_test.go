package reducers

import (
	"testing"
	"time"

	"helpscout-metrics/internal/models"
	"helpscout-metrics/internal/sinks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func owned(name string) *models.Owner {
	return &models.Owner{FirstName: name}
}

func TestOldestBreakdown_TalliesAndFindsOldest(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 17, 12, 0, 0, 0, time.UTC)
	oldest := now.AddDate(0, 0, -3)

	convos := []models.Conversation{
		{Status: "active", Owner: owned("Jack"), UserModifiedAt: at(now.AddDate(0, 0, -1))},
		{Status: "active", Owner: owned("Jill"), UserModifiedAt: at(oldest)},
		{Status: "active", Owner: owned("Jack"), UserModifiedAt: at(now.AddDate(0, 0, -2))},
		{Status: "closed", Owner: owned("Pat"), UserModifiedAt: at(now.AddDate(0, 0, -30))},
		{Status: "active", UserModifiedAt: at(now.AddDate(0, 0, -60))}, // unassigned
	}

	sink := sinks.NewSnapshot()
	OldestBreakdown(sink, convos, now)
	values := sink.Values()

	assert.Equal(t, sinks.Breakdown{"Jack": 2, "Jill": 1}, values[metricActiveByOwner])
	assert.Equal(t, oldest, values[metricOldestTime])
	assert.Equal(t, "Jill", values[metricOldestOwner])
	assert.Equal(t, "3 days", values[metricOldestAge])
	assert.Equal(t, "Jill: 3 days of no response.", values[metricOldestShaming])
}

func TestOldestBreakdown_TieFirstEncounteredWins(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 17, 12, 0, 0, 0, time.UTC)
	sameInstant := at(now.AddDate(0, 0, -5))

	convos := []models.Conversation{
		{Status: "active", Owner: owned("First"), UserModifiedAt: sameInstant},
		{Status: "active", Owner: owned("Second"), UserModifiedAt: sameInstant},
	}

	sink := sinks.NewSnapshot()
	OldestBreakdown(sink, convos, now)

	assert.Equal(t, "First", sink.Values()[metricOldestOwner], "strict comparison keeps the first of a tie")
}

func TestOldestBreakdown_NoActiveOwnedTickets(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 17, 12, 0, 0, 0, time.UTC)

	convos := []models.Conversation{
		{Status: "closed", Owner: owned("Jack"), UserModifiedAt: at(now.AddDate(0, 0, -1))},
		{Status: "active", UserModifiedAt: at(now.AddDate(0, 0, -1))}, // unassigned
	}

	sink := sinks.NewSnapshot()
	OldestBreakdown(sink, convos, now)
	values := sink.Values()

	require.Contains(t, values, metricActiveByOwner)
	assert.Equal(t, sinks.Breakdown{}, values[metricActiveByOwner], "breakdown is reported, empty")

	assert.NotContains(t, values, metricOldestTime, "oldest-ticket metrics are omitted, not defaulted")
	assert.NotContains(t, values, metricOldestOwner)
	assert.NotContains(t, values, metricOldestAge)
	assert.NotContains(t, values, metricOldestShaming)
}

func TestRelativeAge_NoSuffix(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 17, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "3 days", RelativeAge(now.AddDate(0, 0, -3), now))
	assert.Equal(t, "1 week", RelativeAge(now.AddDate(0, 0, -8), now))
}
