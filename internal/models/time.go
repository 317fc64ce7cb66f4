package models

import (
	"encoding/json"
	"time"
)

// Time is a timestamp as serialized by the Help Scout API.
//
// The API omits timestamps that have not happened yet (a conversation that
// is still open has no closedAt), and historical records occasionally carry
// malformed values. Decoding is therefore tolerant: null, "", and
// unparseable strings all decode to the zero time instead of failing the
// whole page. The zero time is treated as "never matches" by every window
// filter, so a bad timestamp can only ever exclude a record.
type Time struct {
	time.Time
}

// timeLayouts are the formats the API has been observed to produce.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// UnmarshalJSON implements json.Unmarshaler. It never returns an error for
// absent or malformed values; those decode to the zero time.
func (t *Time) UnmarshalJSON(data []byte) error {
	t.Time = time.Time{}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// null, numbers, objects: treat as unset
		return nil
	}
	if s == "" {
		return nil
	}

	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}

	return nil
}

// MarshalJSON implements json.Marshaler. The zero time serializes as null.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}
