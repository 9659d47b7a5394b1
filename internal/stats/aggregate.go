package stats

import (
	"sort"

	"github.com/moodtrackr/backend/internal/models"
)

// Occurrence is one facet value extracted from an entry, with the weight
// that contributes to the group's running average (an intensity, a stress
// level, or 1 for pure counts).
type Occurrence struct {
	Key    string
	Weight float64
}

// Extractor obtains zero or more facet occurrences from one entry.
type Extractor func(models.JournalEntry) []Occurrence

// Aggregate folds every (entry, occurrence) pair into a group keyed by the
// occurrence key: frequency, average weight, percentage of the input entry
// count, last-occurrence timestamp and the contributing entries. Groups are
// ordered by descending frequency; ties keep first-seen order. Occurrences
// with an empty key are skipped. Zero entries produce zero groups.
func Aggregate(entries []models.JournalEntry, extract Extractor) []models.FacetGroup {
	total := len(entries)
	if total == 0 {
		return []models.FacetGroup{}
	}

	type bucket struct {
		group models.FacetGroup
		sum   float64
	}

	index := make(map[string]*bucket)
	order := make([]*bucket, 0)

	for _, e := range entries {
		for _, occ := range extract(e) {
			if occ.Key == "" {
				continue
			}
			b, ok := index[occ.Key]
			if !ok {
				b = &bucket{group: models.FacetGroup{Name: occ.Key}}
				index[occ.Key] = b
				order = append(order, b)
			}
			b.group.Frequency++
			b.sum += occ.Weight
			b.group.LastWeight = occ.Weight
			b.group.Entries = append(b.group.Entries, e)
			b.group.Dates = append(b.group.Dates, e.Timestamp)
		}
	}

	groups := make([]models.FacetGroup, 0, len(order))
	for _, b := range order {
		g := b.group
		g.Average = b.sum / float64(g.Frequency)
		g.Percentage = float64(g.Frequency) / float64(total) * 100
		for _, d := range g.Dates {
			if d.After(g.LastOccurrence) {
				g.LastOccurrence = d
			}
		}
		groups = append(groups, g)
	}

	// SliceStable preserves discovery order between equal frequencies.
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Frequency > groups[j].Frequency
	})

	return groups
}
