package reducers

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// RelativeAge renders how long before now t was, as a human phrase such as
// "3 days". The "ago" suffix is suppressed per call (empty label) rather
// than by mutating formatter-global settings; the age is composed into
// larger strings where the suffix would read badly.
func RelativeAge(t time.Time, now time.Time) string {
	return strings.TrimSpace(humanize.RelTime(t, now, "", ""))
}
