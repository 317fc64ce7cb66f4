// Package windows provides the date-range filters the reducers run over.
//
// A Range is inclusive at both ends and compares instants at millisecond
// resolution. Conversations whose designated timestamp is unset (zero)
// never match, which is how an open conversation stays out of the
// closed-today window.
package windows

import (
	"time"

	"helpscout-metrics/internal/models"
)

// Range is a closed instant range [Start, End].
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the range. The zero time never
// matches, regardless of the range.
func (r Range) Contains(t models.Time) bool {
	if t.IsZero() {
		return false
	}
	ms := t.UnixMilli()
	return ms >= r.Start.UnixMilli() && ms <= r.End.UnixMilli()
}

// ByCreatedAt returns the conversations whose createdAt falls within r.
func ByCreatedAt(convos []models.Conversation, r Range) []models.Conversation {
	return filter(convos, r, func(c *models.Conversation) models.Time { return c.CreatedAt })
}

// ByUserModifiedAt returns the conversations whose userModifiedAt falls within r.
func ByUserModifiedAt(convos []models.Conversation, r Range) []models.Conversation {
	return filter(convos, r, func(c *models.Conversation) models.Time { return c.UserModifiedAt })
}

// ByClosedAt returns the conversations whose closedAt falls within r.
// Conversations that were never closed are excluded.
func ByClosedAt(convos []models.Conversation, r Range) []models.Conversation {
	return filter(convos, r, func(c *models.Conversation) models.Time { return c.ClosedAt })
}

func filter(convos []models.Conversation, r Range, field func(*models.Conversation) models.Time) []models.Conversation {
	var matched []models.Conversation
	for i := range convos {
		if r.Contains(field(&convos[i])) {
			matched = append(matched, convos[i])
		}
	}
	return matched
}

// DaysAgo shifts t back by n calendar days, keeping the time of day.
// Calendar arithmetic, not duration arithmetic: shifting across a DST
// change still lands on the same wall-clock time.
func DaysAgo(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, -n)
}

// DayStart returns t's calendar day at 00:00:00 in t's location.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayEnd returns t's calendar day at 23:59:59 in t's location.
// Sub-second precision is deliberately dropped; a conversation closed in
// the final second of the day still matches.
func DayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
