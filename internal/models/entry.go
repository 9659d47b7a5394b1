package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names in the mood tracker database.
const (
	EntryCollection = "mood_entries"
	UserCollection  = "users"
)

// TimeOfDay is the coarse daypart an entry was recorded in.
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeNight     TimeOfDay = "night"

	// TimeUnspecified covers entries recorded without a daypart.
	TimeUnspecified TimeOfDay = ""
)

// User represents a user in the system, keyed by Telegram account.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TelegramID int64              `bson:"telegramId" json:"telegram_id"`
	CreatedAt  time.Time          `bson:"createdAt,omitempty" json:"created_at,omitempty"`
}

// SleepData holds the sleep block of a morning entry.
type SleepData struct {
	Hours            *float64 `bson:"hours,omitempty" json:"hours,omitempty"`
	Quality          *float64 `bson:"quality,omitempty" json:"quality,omitempty"`
	DreamDescription string   `bson:"dreamDescription,omitempty" json:"dreamDescription,omitempty"`
}

// PhysicalSymptom is one symptom reported in an entry.
type PhysicalSymptom struct {
	Name      string   `bson:"name" json:"name"`
	Intensity *float64 `bson:"intensity,omitempty" json:"intensity,omitempty"`
	Location  string   `bson:"location,omitempty" json:"location,omitempty"`
}

// Emotion is one emotion reported in an entry.
type Emotion struct {
	Name      string   `bson:"name" json:"name"`
	Intensity *float64 `bson:"intensity,omitempty" json:"intensity,omitempty"`
}

// JournalEntry is one mood journal record as persisted in the mood_entries
// collection. Entries are immutable once fetched; all derived statistics are
// recomputed from scratch on every input change.
type JournalEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	TimeOfDay TimeOfDay          `bson:"timeOfDay,omitempty" json:"timeOfDay,omitempty"`

	SleepData *SleepData `bson:"sleepData,omitempty" json:"sleepData,omitempty"`

	OverallPhysical *float64 `bson:"overallPhysical,omitempty" json:"overallPhysical,omitempty"`
	OverallMental   *float64 `bson:"overallMental,omitempty" json:"overallMental,omitempty"`

	PhysicalSymptoms []PhysicalSymptom `bson:"physicalSymptoms,omitempty" json:"physicalSymptoms,omitempty"`
	Emotions         []Emotion         `bson:"emotions,omitempty" json:"emotions,omitempty"`

	Thoughts   string   `bson:"thoughts,omitempty" json:"thoughts,omitempty"`
	Triggers   []string `bson:"triggers,omitempty" json:"triggers,omitempty"`
	Activities []string `bson:"activities,omitempty" json:"activities,omitempty"`
	Food       string   `bson:"food,omitempty" json:"food,omitempty"`

	StressLevel *float64 `bson:"stressLevel,omitempty" json:"stressLevel,omitempty"`

	Notes string   `bson:"notes,omitempty" json:"notes,omitempty"`
	Tags  []string `bson:"tags,omitempty" json:"tags,omitempty"`

	Source               string `bson:"source,omitempty" json:"source,omitempty"`
	NotificationSequence *int   `bson:"notificationSequence,omitempty" json:"notificationSequence,omitempty"`
}

// HasNotes reports whether the entry carries non-empty free-text notes.
func (e *JournalEntry) HasNotes() bool {
	for _, r := range e.Notes {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return true
		}
	}
	return false
}

// Day returns the entry's timestamp truncated to its calendar day in UTC.
func (e *JournalEntry) Day() time.Time {
	return e.Timestamp.UTC().Truncate(24 * time.Hour)
}

// DayKey returns the calendar-day string used for day-level bucketing and
// for the detail resolver's best-effort join.
func (e *JournalEntry) DayKey() string {
	return e.Timestamp.UTC().Format("2006-01-02")
}

// EntriesResponse is the payload of GET /entries, matching the shape the
// miniapp consumes.
type EntriesResponse struct {
	Entries   []JournalEntry `json:"entries"`
	UserFound bool           `json:"userFound"`
	Count     int            `json:"count"`
}
