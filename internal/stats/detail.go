package stats

import "github.com/moodtrackr/backend/internal/models"

// facetValue reports whether the entry contains the facet value and returns
// the facet-specific intensity: the reported intensity for emotions and
// symptoms, the entry's stress level for triggers.
func facetValue(e *models.JournalEntry, facet Facet, name string) (float64, bool) {
	switch facet {
	case FacetEmotion:
		for _, em := range e.Emotions {
			if em.Name == name {
				return val(em.Intensity), true
			}
		}
	case FacetSymptom:
		for _, s := range e.PhysicalSymptoms {
			if s.Name == name {
				return val(s.Intensity), true
			}
		}
	case FacetTrigger:
		for _, t := range e.Triggers {
			if t == name {
				return val(e.StressLevel), true
			}
		}
	}
	return 0, false
}

// facetOthers lists the entry's co-occurring facet values, excluding name.
func facetOthers(e *models.JournalEntry, facet Facet, name string) []string {
	var others []string
	switch facet {
	case FacetEmotion:
		for _, em := range e.Emotions {
			if em.Name != name {
				others = append(others, em.Name)
			}
		}
	case FacetSymptom:
		for _, s := range e.PhysicalSymptoms {
			if s.Name != name {
				others = append(others, s.Name)
			}
		}
	case FacetTrigger:
		for _, t := range e.Triggers {
			if t != name {
				others = append(others, t)
			}
		}
	}
	return others
}

// ResolveDetails returns the ordered sub-series of entries containing the
// selected facet value, projected to drill-down records.
//
// The back-reference to the source entry uses a best-effort join on
// (calendar day, facet-value presence), not on the entry id: when two
// entries on the same day share the facet value, every record of that day
// resolves to the first of them. This mirrors the upstream behavior and is
// a known precision limitation of the day-string join.
func ResolveDetails(entries []models.JournalEntry, facet Facet, name string) []models.DetailRecord {
	records := make([]models.DetailRecord, 0)
	for i := range entries {
		e := &entries[i]
		intensity, ok := facetValue(e, facet, name)
		if !ok {
			continue
		}
		records = append(records, models.DetailRecord{
			Date:      e.Timestamp,
			Label:     e.DayKey(),
			Intensity: intensity,
			Physical:  val(e.OverallPhysical),
			Mental:    val(e.OverallMental),
			Stress:    val(e.StressLevel),
			TimeOfDay: e.TimeOfDay,
			HasNotes:  e.HasNotes(),
			Notes:     e.Notes,
			Thoughts:  e.Thoughts,
			Others:    facetOthers(e, facet, name),
			Entry:     joinByDay(entries, e.DayKey(), facet, name),
		})
	}
	return records
}

// joinByDay finds the first entry on the given calendar day containing the
// facet value.
func joinByDay(entries []models.JournalEntry, dayKey string, facet Facet, name string) *models.JournalEntry {
	for i := range entries {
		e := &entries[i]
		if e.DayKey() != dayKey {
			continue
		}
		if _, ok := facetValue(e, facet, name); ok {
			return e
		}
	}
	return nil
}
