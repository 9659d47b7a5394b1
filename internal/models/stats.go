package models

import "time"

// FacetGroup is the aggregate record for one facet value (an emotion name,
// symptom name, trigger label, daypart, or weekday).
//
// Invariants: Frequency == len(Entries) == len(Dates); Percentage is
// Frequency over the filtered-entry count, zero when that count is zero.
type FacetGroup struct {
	Name           string         `json:"name"`
	Frequency      int            `json:"frequency"`
	Average        float64        `json:"average"`
	Percentage     float64        `json:"percentage"`
	LastOccurrence time.Time      `json:"last_occurrence"`
	LastWeight     float64        `json:"last_weight"`
	Entries        []JournalEntry `json:"-"`
	Dates          []time.Time    `json:"-"`
}

// SeriesPoint is one per-entry chart point (physical/mental/stress lines).
type SeriesPoint struct {
	Date         time.Time `json:"date"`
	Label        string    `json:"label"`
	Physical     float64   `json:"physical"`
	Mental       float64   `json:"mental"`
	Stress       float64   `json:"stress"`
	TimeOfDay    TimeOfDay `json:"time_of_day,omitempty"`
	HasNotes     bool      `json:"has_notes"`
	HasSymptoms  bool      `json:"has_symptoms"`
	TriggerCount int       `json:"trigger_count"`
}

// DayPoint is one calendar-day bucket of a day-level sub-aggregation.
// HasNotes drives the annotation marker on the rendered chart point.
type DayPoint struct {
	Date     time.Time `json:"date"`
	Label    string    `json:"label"`
	Count    int       `json:"count"`
	Average  float64   `json:"average"`
	Names    []string  `json:"names,omitempty"`
	HasNotes bool      `json:"has_notes"`
}

// CorrelationPoint pairs an entry's stress level with its overall scores for
// scatter display. Size grows monotonically with the trigger count.
type CorrelationPoint struct {
	Stress       float64   `json:"stress"`
	Physical     float64   `json:"physical"`
	Mental       float64   `json:"mental"`
	Date         time.Time `json:"date"`
	Label        string    `json:"label"`
	TriggerCount int       `json:"trigger_count"`
	Size         float64   `json:"size"`
}

// StressSummary is the scalar overview of the stress facet. All fields are
// zero-valued when the filtered set is empty.
type StressSummary struct {
	EntryCount        int     `json:"entry_count"`
	AvgStress         float64 `json:"avg_stress"`
	MaxStress         float64 `json:"max_stress"`
	MinStress         float64 `json:"min_stress"`
	HighStressCount   int     `json:"high_stress_count"`
	HighStressPct     float64 `json:"high_stress_pct"`
	TriggerDayCount   int     `json:"trigger_day_count"`
	TriggerDayPct     float64 `json:"trigger_day_pct"`
	TotalTriggers     int     `json:"total_triggers"`
	MostCommonTrigger string  `json:"most_common_trigger,omitempty"`
}

// PhysicalSummary is the scalar overview of the physical facet. BestDay and
// WorstDay are nil when the filtered set is empty.
type PhysicalSummary struct {
	EntryCount      int           `json:"entry_count"`
	AvgPhysical     float64       `json:"avg_physical"`
	SymptomDayCount int           `json:"symptom_day_count"`
	SymptomDayPct   float64       `json:"symptom_day_pct"`
	TotalSymptoms   int           `json:"total_symptoms"`
	UniqueSymptoms  int           `json:"unique_symptoms"`
	BestDay         *JournalEntry `json:"best_day,omitempty"`
	WorstDay        *JournalEntry `json:"worst_day,omitempty"`
}

// DetailRecord is one drill-down row for a selected facet value: the
// facet-specific intensity plus the concurrent scores and free text of the
// entry it was reported in.
type DetailRecord struct {
	Date      time.Time `json:"date"`
	Label     string    `json:"label"`
	Intensity float64   `json:"intensity"`
	Physical  float64   `json:"physical"`
	Mental    float64   `json:"mental"`
	Stress    float64   `json:"stress"`
	TimeOfDay TimeOfDay `json:"time_of_day,omitempty"`
	HasNotes  bool      `json:"has_notes"`
	Notes     string    `json:"notes,omitempty"`
	Thoughts  string    `json:"thoughts,omitempty"`
	// Others lists the co-occurring facet values of the same entry
	// (for a trigger: the other triggers present that day).
	Others []string `json:"others,omitempty"`
	// Entry is the source entry resolved by the best-effort
	// calendar-day join; may point at a same-day sibling when two
	// entries on one day share the facet value.
	Entry *JournalEntry `json:"entry,omitempty"`
}

// SleepPoint is one chart point of the sleep quality/hours series.
type SleepPoint struct {
	Date     time.Time `json:"date"`
	Label    string    `json:"label"`
	Quality  float64   `json:"quality"`
	Hours    float64   `json:"hours"`
	HasDream bool      `json:"has_dream"`
}

// DreamExcerpt is one dream description shown on the sleep page.
type DreamExcerpt struct {
	Date        time.Time `json:"date"`
	Label       string    `json:"label"`
	Quality     *float64  `json:"quality,omitempty"`
	Hours       *float64  `json:"hours,omitempty"`
	Description string    `json:"description"`
}

// PhysicalStatsResponse is the payload of GET /api/v1/stats/physical.
type PhysicalStatsResponse struct {
	Period        string          `json:"period"`
	EntryCount    int             `json:"entry_count"`
	Series        []SeriesPoint   `json:"series"`
	Symptoms      []FacetGroup    `json:"symptoms"`
	SymptomsByDay []DayPoint      `json:"symptoms_by_day"`
	Summary       PhysicalSummary `json:"summary"`
}

// StressStatsResponse is the payload of GET /api/v1/stats/stress.
type StressStatsResponse struct {
	Period      string             `json:"period"`
	EntryCount  int                `json:"entry_count"`
	Series      []SeriesPoint      `json:"series"`
	Triggers    []FacetGroup       `json:"triggers"`
	TimeOfDay   []FacetGroup       `json:"time_of_day"`
	Weekdays    []FacetGroup       `json:"weekdays"`
	Correlation []CorrelationPoint `json:"correlation"`
	Summary     StressSummary      `json:"summary"`
}

// EmotionStatsResponse is the payload of GET /api/v1/stats/emotions.
type EmotionStatsResponse struct {
	Period     string       `json:"period"`
	EntryCount int          `json:"entry_count"`
	Emotions   []FacetGroup `json:"emotions"`
	ByDay      []DayPoint   `json:"by_day"`
}

// SleepStatsResponse is the payload of GET /api/v1/stats/sleep.
type SleepStatsResponse struct {
	Period     string         `json:"period"`
	EntryCount int            `json:"entry_count"`
	Series     []SleepPoint   `json:"series"`
	Dreams     []DreamExcerpt `json:"dreams"`
}

// FacetDetailResponse is the payload of the drill-down endpoints.
type FacetDetailResponse struct {
	Period     string         `json:"period"`
	Facet      string         `json:"facet"`
	Name       string         `json:"name"`
	Frequency  int            `json:"frequency"`
	Average    float64        `json:"average"`
	Percentage float64        `json:"percentage"`
	Records    []DetailRecord `json:"records"`
}
