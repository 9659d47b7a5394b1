// Package stats is the aggregation core of the mood tracker: pure,
// synchronous functions that turn an immutable snapshot of journal entries
// into period-bounded, grouped, ranked views. Nothing in this package holds
// state between calls; every view is rebuilt from scratch on each
// recomputation.
package stats

import (
	"fmt"
	"time"

	"github.com/moodtrackr/backend/internal/models"
)

// Period is a trailing window in days. PeriodAll disables filtering.
type Period int

const (
	PeriodAll Period = 0
	Period7   Period = 7
	Period14  Period = 14
	Period30  Period = 30
)

// DefaultPeriod matches the stats pages' initial selection.
const DefaultPeriod = Period7

// ParsePeriod converts a query-string value to a Period.
func ParsePeriod(s string) (Period, error) {
	switch s {
	case "", "7":
		return Period7, nil
	case "14":
		return Period14, nil
	case "30":
		return Period30, nil
	case "all":
		return PeriodAll, nil
	}
	return 0, fmt.Errorf("invalid period %q: must be 7, 14, 30 or all", s)
}

// String returns the query-string form of the period.
func (p Period) String() string {
	if p == PeriodAll {
		return "all"
	}
	return fmt.Sprintf("%d", int(p))
}

// FilterByPeriod returns the entries whose timestamp falls within
// [now - p days, now], preserving relative order. PeriodAll returns the
// input unchanged. Entries with a zero timestamp never pass a bounded
// window. An empty result is a valid state, not an error.
func FilterByPeriod(entries []models.JournalEntry, p Period, now time.Time) []models.JournalEntry {
	if p == PeriodAll {
		return entries
	}

	from := now.AddDate(0, 0, -int(p))
	filtered := make([]models.JournalEntry, 0, len(entries))
	for _, e := range entries {
		if e.Timestamp.IsZero() {
			continue
		}
		if !e.Timestamp.Before(from) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
