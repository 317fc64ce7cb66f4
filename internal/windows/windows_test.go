package windows

import (
	"testing"
	"time"

	"helpscout-metrics/internal/models"

	"github.com/stretchr/testify/assert"
)

func ts(t time.Time) models.Time {
	return models.Time{Time: t}
}

func TestRange_InclusiveEndpoints(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 17, 9, 0, 0, 0, time.UTC)
	r := Range{Start: start, End: end}

	assert.True(t, r.Contains(ts(start)), "timestamp exactly at start is included")
	assert.True(t, r.Contains(ts(end)), "timestamp exactly at end is included")
	assert.True(t, r.Contains(ts(start.Add(time.Hour))))
	assert.False(t, r.Contains(ts(start.Add(-time.Millisecond))))
	assert.False(t, r.Contains(ts(end.Add(time.Millisecond))))
}

func TestRange_ZeroTimeNeverMatches(t *testing.T) {
	t.Parallel()

	// A range that spans the zero instant still must not match an unset timestamp.
	r := Range{
		Start: time.Date(-1, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.False(t, r.Contains(models.Time{}))
}

func TestByClosedAt_ExcludesNeverClosed(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 8, 17, 12, 0, 0, 0, time.UTC)
	r := Range{Start: DayStart(day), End: DayEnd(day)}

	convos := []models.Conversation{
		{ID: 1, ClosedAt: ts(day)},
		{ID: 2}, // never closed, other timestamps irrelevant
		{ID: 3, CreatedAt: ts(day), UserModifiedAt: ts(day)},
		{ID: 4, ClosedAt: ts(day.AddDate(0, 0, -1))},
	}

	got := ByClosedAt(convos, r)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestByCreatedAt_And_ByUserModifiedAt(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 17, 12, 0, 0, 0, time.UTC)
	r := Range{Start: DaysAgo(now, 7), End: now}

	inWindow := ts(now.AddDate(0, 0, -3))
	outOfWindow := ts(now.AddDate(0, 0, -10))

	convos := []models.Conversation{
		{ID: 1, CreatedAt: inWindow, UserModifiedAt: outOfWindow},
		{ID: 2, CreatedAt: outOfWindow, UserModifiedAt: inWindow},
	}

	created := ByCreatedAt(convos, r)
	assert.Len(t, created, 1)
	assert.Equal(t, int64(1), created[0].ID)

	modified := ByUserModifiedAt(convos, r)
	assert.Len(t, modified, 1)
	assert.Equal(t, int64(2), modified[0].ID)
}

func TestDayBounds(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC-5", -5*3600)
	now := time.Date(2026, 8, 17, 15, 42, 30, 123456789, loc)

	start := DayStart(now)
	assert.Equal(t, time.Date(2026, 8, 17, 0, 0, 0, 0, loc), start)

	end := DayEnd(now)
	assert.Equal(t, time.Date(2026, 8, 17, 23, 59, 59, 0, loc), end)
	assert.Equal(t, loc, end.Location(), "bounds stay in the local calendar")
}

func TestDaysAgo_CalendarShift(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 3, 10, 30, 0, 0, time.UTC)
	got := DaysAgo(now, 7)
	assert.Equal(t, time.Date(2026, 2, 24, 10, 30, 0, 0, time.UTC), got, "shift crosses month boundary by calendar days")
}
