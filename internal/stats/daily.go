package stats

import (
	"sort"

	"github.com/moodtrackr/backend/internal/models"
)

// EntrySeries projects entries to per-entry chart points for the score line
// charts. Missing scores default to 0. Input order is preserved.
func EntrySeries(entries []models.JournalEntry) []models.SeriesPoint {
	points := make([]models.SeriesPoint, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		points = append(points, models.SeriesPoint{
			Date:         e.Timestamp,
			Label:        e.DayKey(),
			Physical:     val(e.OverallPhysical),
			Mental:       val(e.OverallMental),
			Stress:       val(e.StressLevel),
			TimeOfDay:    e.TimeOfDay,
			HasNotes:     e.HasNotes(),
			HasSymptoms:  len(e.PhysicalSymptoms) > 0,
			TriggerCount: len(e.Triggers),
		})
	}
	return points
}

// DailyBuckets groups occurrences by calendar day: the occurrence count and
// average weight per day, the distinct facet values seen that day, and a
// HasNotes flag set when any entry that day carries notes. Days are ordered
// ascending. Days whose entries yield no occurrences still appear with a
// zero count so the chart shows the gap.
func DailyBuckets(entries []models.JournalEntry, extract Extractor) []models.DayPoint {
	type bucket struct {
		point models.DayPoint
		sum   float64
		seen  map[string]bool
	}

	index := make(map[string]*bucket)
	order := make([]*bucket, 0)

	for _, e := range entries {
		key := e.DayKey()
		b, ok := index[key]
		if !ok {
			b = &bucket{
				point: models.DayPoint{Date: e.Day(), Label: key},
				seen:  make(map[string]bool),
			}
			index[key] = b
			order = append(order, b)
		}
		if e.HasNotes() {
			b.point.HasNotes = true
		}
		for _, occ := range extract(e) {
			if occ.Key == "" {
				continue
			}
			b.point.Count++
			b.sum += occ.Weight
			if !b.seen[occ.Key] {
				b.seen[occ.Key] = true
				b.point.Names = append(b.point.Names, occ.Key)
			}
		}
	}

	days := make([]models.DayPoint, 0, len(order))
	for _, b := range order {
		p := b.point
		if p.Count > 0 {
			p.Average = b.sum / float64(p.Count)
		}
		days = append(days, p)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	return days
}

// SymptomsByDay is the per-day symptom count series of the physical page.
func SymptomsByDay(entries []models.JournalEntry) []models.DayPoint {
	return DailyBuckets(entries, func(e models.JournalEntry) []Occurrence {
		occs := make([]Occurrence, 0, len(e.PhysicalSymptoms))
		for _, s := range e.PhysicalSymptoms {
			occs = append(occs, Occurrence{Key: s.Name, Weight: val(s.Intensity)})
		}
		return occs
	})
}

// EmotionsByDay is the per-day emotion count/average-intensity series.
func EmotionsByDay(entries []models.JournalEntry) []models.DayPoint {
	return DailyBuckets(entries, func(e models.JournalEntry) []Occurrence {
		occs := make([]Occurrence, 0, len(e.Emotions))
		for _, em := range e.Emotions {
			occs = append(occs, Occurrence{Key: em.Name, Weight: val(em.Intensity)})
		}
		return occs
	})
}
