package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodtrackr/backend/internal/models"
)

func TestEntrySeries(t *testing.T) {
	entries := []models.JournalEntry{
		{
			Timestamp:        day(10, 9),
			TimeOfDay:        models.TimeMorning,
			OverallPhysical:  fptr(7),
			OverallMental:    fptr(6),
			StressLevel:      fptr(4),
			Notes:            "slept well",
			PhysicalSymptoms: []models.PhysicalSymptom{{Name: "headache"}},
			Triggers:         []string{"work", "noise"},
		},
		{
			Timestamp: day(11, 9),
		},
	}

	series := EntrySeries(entries)

	require.Len(t, series, 2)

	p := series[0]
	assert.Equal(t, "2026-03-10", p.Label)
	assert.InDelta(t, 7.0, p.Physical, 1e-9)
	assert.InDelta(t, 6.0, p.Mental, 1e-9)
	assert.InDelta(t, 4.0, p.Stress, 1e-9)
	assert.Equal(t, models.TimeMorning, p.TimeOfDay)
	assert.True(t, p.HasNotes)
	assert.True(t, p.HasSymptoms)
	assert.Equal(t, 2, p.TriggerCount)

	// Missing scores default to zero, not an error.
	q := series[1]
	assert.Zero(t, q.Physical)
	assert.Zero(t, q.Stress)
	assert.False(t, q.HasNotes)
	assert.False(t, q.HasSymptoms)
}

func TestDailyBucketsGroupsByCalendarDay(t *testing.T) {
	entries := []models.JournalEntry{
		{
			Timestamp: day(10, 9),
			PhysicalSymptoms: []models.PhysicalSymptom{
				{Name: "headache", Intensity: fptr(6)},
			},
		},
		{
			Timestamp: day(10, 20),
			Notes:     "long day",
			PhysicalSymptoms: []models.PhysicalSymptom{
				{Name: "headache", Intensity: fptr(4)},
				{Name: "nausea", Intensity: fptr(2)},
			},
		},
		{
			Timestamp: day(11, 9),
			// physical score without symptoms: the day appears with zero count
			OverallPhysical: fptr(8),
		},
	}

	days := SymptomsByDay(entries)

	require.Len(t, days, 2)

	d0 := days[0]
	assert.Equal(t, "2026-03-10", d0.Label)
	assert.Equal(t, 3, d0.Count)
	assert.InDelta(t, 4.0, d0.Average, 1e-9)
	assert.Equal(t, []string{"headache", "nausea"}, d0.Names)
	assert.True(t, d0.HasNotes)

	d1 := days[1]
	assert.Equal(t, "2026-03-11", d1.Label)
	assert.Equal(t, 0, d1.Count)
	assert.Zero(t, d1.Average)
	assert.Empty(t, d1.Names)
	assert.False(t, d1.HasNotes)
}

func TestDailyBucketsSortedAscending(t *testing.T) {
	entries := []models.JournalEntry{
		{Timestamp: day(12, 9), Emotions: []models.Emotion{{Name: "joy", Intensity: fptr(5)}}},
		{Timestamp: day(10, 9), Emotions: []models.Emotion{{Name: "calm", Intensity: fptr(7)}}},
	}

	days := EmotionsByDay(entries)

	require.Len(t, days, 2)
	assert.True(t, days[0].Date.Before(days[1].Date))
	assert.Equal(t, "2026-03-10", days[0].Label)
}

func TestDailyBucketsEmptyInput(t *testing.T) {
	days := EmotionsByDay(nil)
	assert.NotNil(t, days)
	assert.Empty(t, days)
}

func TestDayKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	e := models.JournalEntry{Timestamp: time.Date(2026, 3, 11, 2, 0, 0, 0, loc)}

	// 02:00 UTC+5 is still 2026-03-10 in UTC
	assert.Equal(t, "2026-03-10", e.DayKey())
}
