package stats

import "github.com/moodtrackr/backend/internal/models"

// SleepSeries projects sleep-normalized entries to quality/hours chart
// points. Missing quality or hours default to 0; HasDream flags entries
// with a dream description for the chart marker.
func SleepSeries(entries []models.JournalEntry) []models.SleepPoint {
	points := make([]models.SleepPoint, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		if e.SleepData == nil {
			continue
		}
		points = append(points, models.SleepPoint{
			Date:     e.Timestamp,
			Label:    e.DayKey(),
			Quality:  val(e.SleepData.Quality),
			Hours:    val(e.SleepData.Hours),
			HasDream: e.SleepData.DreamDescription != "",
		})
	}
	return points
}

// Dreams returns the dream excerpts of the period, in input order. Quality
// and hours stay optional here so the display can show a dash rather than
// a fabricated zero.
func Dreams(entries []models.JournalEntry) []models.DreamExcerpt {
	dreams := make([]models.DreamExcerpt, 0)
	for i := range entries {
		e := &entries[i]
		if e.SleepData == nil || e.SleepData.DreamDescription == "" {
			continue
		}
		dreams = append(dreams, models.DreamExcerpt{
			Date:        e.Timestamp,
			Label:       e.DayKey(),
			Quality:     e.SleepData.Quality,
			Hours:       e.SleepData.Hours,
			Description: e.SleepData.DreamDescription,
		})
	}
	return dreams
}
