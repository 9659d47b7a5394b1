package stats

import (
	"sort"
	"time"

	"github.com/moodtrackr/backend/internal/models"
)

// Facet names a dimension of aggregation that supports drill-down.
type Facet string

const (
	FacetEmotion Facet = "emotion"
	FacetSymptom Facet = "symptom"
	FacetTrigger Facet = "trigger"
)

// TimeOfDayUnspecified is the bucket for entries without a daypart.
const TimeOfDayUnspecified = "unspecified"

func val(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// EmotionGroups ranks emotions by frequency; the group average is the
// average reported intensity, defaulting to 0 where intensity is missing.
func EmotionGroups(entries []models.JournalEntry) []models.FacetGroup {
	return Aggregate(entries, func(e models.JournalEntry) []Occurrence {
		occs := make([]Occurrence, 0, len(e.Emotions))
		for _, em := range e.Emotions {
			occs = append(occs, Occurrence{Key: em.Name, Weight: val(em.Intensity)})
		}
		return occs
	})
}

// SymptomGroups ranks physical symptoms by frequency with average intensity.
func SymptomGroups(entries []models.JournalEntry) []models.FacetGroup {
	return Aggregate(entries, func(e models.JournalEntry) []Occurrence {
		occs := make([]Occurrence, 0, len(e.PhysicalSymptoms))
		for _, s := range e.PhysicalSymptoms {
			occs = append(occs, Occurrence{Key: s.Name, Weight: val(s.Intensity)})
		}
		return occs
	})
}

// TriggerGroups ranks stress triggers by frequency; the group average is the
// average stress level of the entries the trigger appeared in.
func TriggerGroups(entries []models.JournalEntry) []models.FacetGroup {
	return Aggregate(entries, func(e models.JournalEntry) []Occurrence {
		occs := make([]Occurrence, 0, len(e.Triggers))
		for _, t := range e.Triggers {
			occs = append(occs, Occurrence{Key: t, Weight: val(e.StressLevel)})
		}
		return occs
	})
}

// timeOfDayKey maps an entry's daypart to its bucket name; anything outside
// the four known dayparts lands in the unspecified bucket.
func timeOfDayKey(t models.TimeOfDay) string {
	switch t {
	case models.TimeMorning, models.TimeAfternoon, models.TimeEvening, models.TimeNight:
		return string(t)
	}
	return TimeOfDayUnspecified
}

var timeOfDayRank = map[string]int{
	string(models.TimeMorning):   0,
	string(models.TimeAfternoon): 1,
	string(models.TimeEvening):   2,
	string(models.TimeNight):     3,
	TimeOfDayUnspecified:         4,
}

// TimeOfDayGroups buckets entries by daypart with average stress per bucket.
// Buckets appear in canonical order (morning, afternoon, evening, night,
// unspecified) regardless of frequency; absent buckets are omitted.
func TimeOfDayGroups(entries []models.JournalEntry) []models.FacetGroup {
	groups := Aggregate(entries, func(e models.JournalEntry) []Occurrence {
		return []Occurrence{{Key: timeOfDayKey(e.TimeOfDay), Weight: val(e.StressLevel)}}
	})
	sort.SliceStable(groups, func(i, j int) bool {
		return timeOfDayRank[groups[i].Name] < timeOfDayRank[groups[j].Name]
	})
	return groups
}

// WeekdayGroups buckets entries by weekday with average stress per bucket.
// All seven weekdays are always present, Sunday through Saturday, with
// zero-valued groups for days without entries.
func WeekdayGroups(entries []models.JournalEntry) []models.FacetGroup {
	groups := Aggregate(entries, func(e models.JournalEntry) []Occurrence {
		return []Occurrence{{Key: e.Timestamp.Weekday().String(), Weight: val(e.StressLevel)}}
	})

	byName := make(map[string]models.FacetGroup, len(groups))
	for _, g := range groups {
		byName[g.Name] = g
	}

	week := make([]models.FacetGroup, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if g, ok := byName[d.String()]; ok {
			week = append(week, g)
		} else {
			week = append(week, models.FacetGroup{Name: d.String()})
		}
	}
	return week
}
