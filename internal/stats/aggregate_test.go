package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodtrackr/backend/internal/models"
)

func day(d int, hour int) time.Time {
	return time.Date(2026, 3, d, hour, 0, 0, 0, time.UTC)
}

func TestEmotionGroupsFrequencyAndAverage(t *testing.T) {
	entries := []models.JournalEntry{
		{
			Timestamp: day(10, 9),
			Emotions: []models.Emotion{
				{Name: "joy", Intensity: fptr(5)},
				{Name: "calm", Intensity: fptr(8)},
			},
		},
		{
			Timestamp: day(11, 9),
			Emotions:  []models.Emotion{{Name: "joy", Intensity: fptr(7)}},
		},
		{
			Timestamp: day(12, 9),
			Emotions:  []models.Emotion{{Name: "anger", Intensity: fptr(4)}},
		},
	}

	groups := EmotionGroups(entries)

	require.Len(t, groups, 3)

	// joy seen twice, ranked first
	joy := groups[0]
	assert.Equal(t, "joy", joy.Name)
	assert.Equal(t, 2, joy.Frequency)
	assert.InDelta(t, 6.0, joy.Average, 1e-9)
	assert.InDelta(t, 100.0/3.0*2, joy.Percentage, 1e-9)
	assert.Equal(t, day(11, 9), joy.LastOccurrence)
	assert.InDelta(t, 7.0, joy.LastWeight, 1e-9)

	// singles keep discovery order
	assert.Equal(t, "calm", groups[1].Name)
	assert.Equal(t, "anger", groups[2].Name)
}

func TestAggregateFrequencyMatchesEntries(t *testing.T) {
	entries := []models.JournalEntry{
		{Timestamp: day(10, 9), Emotions: []models.Emotion{{Name: "joy"}, {Name: "joy"}}},
		{Timestamp: day(11, 9), Emotions: []models.Emotion{{Name: "joy"}}},
	}

	groups := EmotionGroups(entries)

	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, 3, g.Frequency)
	assert.Len(t, g.Entries, g.Frequency)
	assert.Len(t, g.Dates, g.Frequency)
}

func TestAggregateTieBreakKeepsFirstSeen(t *testing.T) {
	entries := []models.JournalEntry{
		{Timestamp: day(10, 9), Emotions: []models.Emotion{{Name: "calm"}, {Name: "joy"}}},
		{Timestamp: day(11, 9), Emotions: []models.Emotion{{Name: "joy"}, {Name: "calm"}}},
	}

	groups := EmotionGroups(entries)

	require.Len(t, groups, 2)
	assert.Equal(t, "calm", groups[0].Name)
	assert.Equal(t, "joy", groups[1].Name)
}

func TestAggregateSkipsEmptyKeys(t *testing.T) {
	entries := []models.JournalEntry{
		{Timestamp: day(10, 9), Emotions: []models.Emotion{{Name: ""}, {Name: "joy"}}},
	}

	groups := EmotionGroups(entries)

	require.Len(t, groups, 1)
	assert.Equal(t, "joy", groups[0].Name)
}

func TestAggregateEmptyInput(t *testing.T) {
	groups := EmotionGroups(nil)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestTriggerGroupsWeightIsStressLevel(t *testing.T) {
	entries := []models.JournalEntry{
		{Timestamp: day(10, 9), StressLevel: fptr(8), Triggers: []string{"work"}},
		{Timestamp: day(11, 9), StressLevel: fptr(6), Triggers: []string{"work", "family"}},
	}

	groups := TriggerGroups(entries)

	require.Len(t, groups, 2)
	work := groups[0]
	assert.Equal(t, "work", work.Name)
	assert.Equal(t, 2, work.Frequency)
	assert.InDelta(t, 7.0, work.Average, 1e-9)

	family := groups[1]
	assert.Equal(t, "family", family.Name)
	assert.InDelta(t, 6.0, family.Average, 1e-9)
}

func TestTimeOfDayGroupsCanonicalOrder(t *testing.T) {
	entries := []models.JournalEntry{
		{Timestamp: day(10, 22), TimeOfDay: models.TimeNight, StressLevel: fptr(4)},
		{Timestamp: day(11, 8), TimeOfDay: models.TimeMorning, StressLevel: fptr(6)},
		{Timestamp: day(11, 23), TimeOfDay: models.TimeNight, StressLevel: fptr(8)},
		{Timestamp: day(12, 12), StressLevel: fptr(5)}, // no daypart
	}

	groups := TimeOfDayGroups(entries)

	// Night is the most frequent bucket but morning still comes first.
	require.Len(t, groups, 3)
	assert.Equal(t, "morning", groups[0].Name)
	assert.Equal(t, "night", groups[1].Name)
	assert.Equal(t, TimeOfDayUnspecified, groups[2].Name)

	assert.Equal(t, 2, groups[1].Frequency)
	assert.InDelta(t, 6.0, groups[1].Average, 1e-9)
}

func TestTimeOfDayGroupsOmitsAbsentBuckets(t *testing.T) {
	entries := []models.JournalEntry{
		{Timestamp: day(10, 8), TimeOfDay: models.TimeMorning, StressLevel: fptr(3)},
	}

	groups := TimeOfDayGroups(entries)

	require.Len(t, groups, 1)
	assert.Equal(t, "morning", groups[0].Name)
}

func TestWeekdayGroupsAlwaysSevenDays(t *testing.T) {
	// 2026-03-09 is a Monday, 2026-03-11 a Wednesday.
	entries := []models.JournalEntry{
		{Timestamp: day(9, 9), StressLevel: fptr(4)},
		{Timestamp: day(9, 18), StressLevel: fptr(6)},
		{Timestamp: day(11, 9), StressLevel: fptr(8)},
	}

	groups := WeekdayGroups(entries)

	require.Len(t, groups, 7)
	want := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	for i, g := range groups {
		assert.Equal(t, want[i], g.Name)
	}

	monday := groups[1]
	assert.Equal(t, 2, monday.Frequency)
	assert.InDelta(t, 5.0, monday.Average, 1e-9)

	// Days without entries stay zero-valued.
	assert.Equal(t, 0, groups[0].Frequency)
	assert.Zero(t, groups[0].Average)
}

func TestWeekdayGroupsEmptyInput(t *testing.T) {
	groups := WeekdayGroups(nil)

	require.Len(t, groups, 7)
	for _, g := range groups {
		assert.Equal(t, 0, g.Frequency)
	}
}
