package stats

import "github.com/moodtrackr/backend/internal/models"

// HighStressThreshold is the stress level at which an entry counts as a
// high-stress day.
const HighStressThreshold = 7

// Scatter point sizing: base size plus a fixed step per trigger, so marker
// size grows monotonically with the trigger count.
const (
	correlationBaseSize    = 10
	correlationTriggerSize = 5
)

// CorrelationPoints pairs stress with the overall scores for every entry
// that carries both a stress level and a physical score. Entries missing
// either side are left out of the pair list (they still participate in the
// single-facet aggregations).
func CorrelationPoints(entries []models.JournalEntry) []models.CorrelationPoint {
	points := make([]models.CorrelationPoint, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		if e.StressLevel == nil || e.OverallPhysical == nil {
			continue
		}
		points = append(points, models.CorrelationPoint{
			Stress:       *e.StressLevel,
			Physical:     *e.OverallPhysical,
			Mental:       val(e.OverallMental),
			Date:         e.Timestamp,
			Label:        e.DayKey(),
			TriggerCount: len(e.Triggers),
			Size:         correlationBaseSize + correlationTriggerSize*float64(len(e.Triggers)),
		})
	}
	return points
}

// SummarizeStress computes the scalar overview of the stress facet over the
// normalized stress entries. triggers is the already-computed trigger group
// list, used for the most-common-trigger headline. An empty input yields an
// all-zero summary.
func SummarizeStress(entries []models.JournalEntry, triggers []models.FacetGroup) models.StressSummary {
	if len(entries) == 0 {
		return models.StressSummary{}
	}

	s := models.StressSummary{EntryCount: len(entries)}
	var sum float64
	for i := range entries {
		e := &entries[i]
		level := val(e.StressLevel)
		sum += level
		if i == 0 || level > s.MaxStress {
			s.MaxStress = level
		}
		if i == 0 || level < s.MinStress {
			s.MinStress = level
		}
		if level >= HighStressThreshold {
			s.HighStressCount++
		}
		if len(e.Triggers) > 0 {
			s.TriggerDayCount++
		}
		s.TotalTriggers += len(e.Triggers)
	}

	n := float64(len(entries))
	s.AvgStress = sum / n
	s.HighStressPct = float64(s.HighStressCount) / n * 100
	s.TriggerDayPct = float64(s.TriggerDayCount) / n * 100
	if len(triggers) > 0 {
		s.MostCommonTrigger = triggers[0].Name
	}
	return s
}

// SummarizePhysical computes the scalar overview of the physical facet over
// the normalized physical entries. symptoms is the already-computed symptom
// group list. Best and worst day are picked in a left-to-right scan, so the
// earlier entry wins score ties; both are nil on empty input.
func SummarizePhysical(entries []models.JournalEntry, symptoms []models.FacetGroup) models.PhysicalSummary {
	if len(entries) == 0 {
		return models.PhysicalSummary{}
	}

	s := models.PhysicalSummary{
		EntryCount:     len(entries),
		UniqueSymptoms: len(symptoms),
	}
	for _, g := range symptoms {
		s.TotalSymptoms += g.Frequency
	}

	var sum float64
	var best, worst *models.JournalEntry
	for i := range entries {
		e := &entries[i]
		score := val(e.OverallPhysical)
		sum += score
		if len(e.PhysicalSymptoms) > 0 {
			s.SymptomDayCount++
		}
		if best == nil || score > val(best.OverallPhysical) {
			best = e
		}
		if worst == nil || score < val(worst.OverallPhysical) {
			worst = e
		}
	}

	n := float64(len(entries))
	s.AvgPhysical = sum / n
	s.SymptomDayPct = float64(s.SymptomDayCount) / n * 100
	s.BestDay = best
	s.WorstDay = worst
	return s
}
