package stats

import (
	"sort"

	"github.com/moodtrackr/backend/internal/models"
)

// Predicates selecting the entries a facet can use. Entries lacking the
// relevant field are excluded from that facet's normalized set rather than
// treated as errors.

// HasPhysicalScore keeps entries with an overall physical score; the
// physical page and its symptom aggregations run over this set.
func HasPhysicalScore(e models.JournalEntry) bool {
	return e.OverallPhysical != nil
}

// HasStressLevel keeps entries with a stress level; the stress, trigger,
// time-of-day and weekday aggregations run over this set.
func HasStressLevel(e models.JournalEntry) bool {
	return e.StressLevel != nil
}

// HasEmotions keeps entries reporting at least one emotion.
func HasEmotions(e models.JournalEntry) bool {
	return len(e.Emotions) > 0
}

// HasSleepData keeps entries carrying a sleep block.
func HasSleepData(e models.JournalEntry) bool {
	return e.SleepData != nil
}

// Normalize filters entries with keep and sorts the result ascending by
// timestamp. Downstream per-day bucketing and first/last-occurrence logic
// assume this ordering. The input slice is not modified.
func Normalize(entries []models.JournalEntry, keep func(models.JournalEntry) bool) []models.JournalEntry {
	normalized := make([]models.JournalEntry, 0, len(entries))
	for _, e := range entries {
		if keep(e) {
			normalized = append(normalized, e)
		}
	}
	sort.SliceStable(normalized, func(i, j int) bool {
		return normalized[i].Timestamp.Before(normalized[j].Timestamp)
	})
	return normalized
}
