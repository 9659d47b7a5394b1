package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/moodtrackr/backend/internal/models"
	"github.com/moodtrackr/backend/internal/stats"
)

// mockEntriesService is a mock implementation of EntriesService for testing
type mockEntriesService struct {
	entries   []models.JournalEntry
	userFound bool
	err       error
}

func (m *mockEntriesService) GetEntries(ctx context.Context, telegramID int64) ([]models.JournalEntry, bool, error) {
	if m.err != nil {
		return nil, false, m.err
	}
	return m.entries, m.userFound, nil
}

func fptr(v float64) *float64 {
	return &v
}

func recentEntry(daysAgo int, mutate func(*models.JournalEntry)) models.JournalEntry {
	e := models.JournalEntry{Timestamp: time.Now().AddDate(0, 0, -daysAgo)}
	if mutate != nil {
		mutate(&e)
	}
	return e
}

func TestGetStressStats(t *testing.T) {
	entries := []models.JournalEntry{
		recentEntry(1, func(e *models.JournalEntry) {
			e.StressLevel = fptr(8)
			e.OverallPhysical = fptr(4)
			e.Triggers = []string{"work"}
		}),
		recentEntry(2, func(e *models.JournalEntry) {
			e.StressLevel = fptr(4)
		}),
		recentEntry(3, func(e *models.JournalEntry) {
			// no stress level: excluded from the stress view
			e.OverallPhysical = fptr(7)
		}),
	}

	svc := NewStatsService(&mockEntriesService{entries: entries, userFound: true})

	resp, err := svc.GetStressStats(context.Background(), 42, stats.Period7)
	if err != nil {
		t.Fatalf("GetStressStats returned error: %v", err)
	}

	if resp.Period != "7" {
		t.Errorf("Expected period %q, got %q", "7", resp.Period)
	}
	if resp.EntryCount != 2 {
		t.Errorf("Expected 2 stress entries, got %d", resp.EntryCount)
	}
	if len(resp.Triggers) != 1 || resp.Triggers[0].Name != "work" {
		t.Errorf("Unexpected triggers: %+v", resp.Triggers)
	}
	if len(resp.Weekdays) != 7 {
		t.Errorf("Expected 7 weekday groups, got %d", len(resp.Weekdays))
	}
	if len(resp.Correlation) != 1 {
		t.Errorf("Expected 1 correlation point, got %d", len(resp.Correlation))
	}
	if resp.Summary.MostCommonTrigger != "work" {
		t.Errorf("Expected most common trigger %q, got %q", "work", resp.Summary.MostCommonTrigger)
	}
}

func TestGetStressStatsAppliesPeriodWindow(t *testing.T) {
	entries := []models.JournalEntry{
		recentEntry(1, func(e *models.JournalEntry) { e.StressLevel = fptr(5) }),
		recentEntry(20, func(e *models.JournalEntry) { e.StressLevel = fptr(9) }),
	}

	svc := NewStatsService(&mockEntriesService{entries: entries, userFound: true})

	resp, err := svc.GetStressStats(context.Background(), 42, stats.Period7)
	if err != nil {
		t.Fatalf("GetStressStats returned error: %v", err)
	}
	if resp.EntryCount != 1 {
		t.Errorf("Expected the 20-day-old entry outside the 7-day window, got %d entries", resp.EntryCount)
	}

	all, err := svc.GetStressStats(context.Background(), 42, stats.PeriodAll)
	if err != nil {
		t.Fatalf("GetStressStats returned error: %v", err)
	}
	if all.EntryCount != 2 {
		t.Errorf("Expected both entries in the all window, got %d", all.EntryCount)
	}
}

func TestGetPhysicalStats(t *testing.T) {
	entries := []models.JournalEntry{
		recentEntry(1, func(e *models.JournalEntry) {
			e.OverallPhysical = fptr(7)
			e.PhysicalSymptoms = []models.PhysicalSymptom{{Name: "headache", Intensity: fptr(5)}}
		}),
		recentEntry(2, func(e *models.JournalEntry) {
			e.OverallPhysical = fptr(3)
		}),
	}

	svc := NewStatsService(&mockEntriesService{entries: entries, userFound: true})

	resp, err := svc.GetPhysicalStats(context.Background(), 42, stats.Period30)
	if err != nil {
		t.Fatalf("GetPhysicalStats returned error: %v", err)
	}

	if resp.EntryCount != 2 {
		t.Errorf("Expected 2 physical entries, got %d", resp.EntryCount)
	}
	if len(resp.Symptoms) != 1 || resp.Symptoms[0].Name != "headache" {
		t.Errorf("Unexpected symptoms: %+v", resp.Symptoms)
	}
	if resp.Summary.BestDay == nil || *resp.Summary.BestDay.OverallPhysical != 7 {
		t.Errorf("Unexpected best day: %+v", resp.Summary.BestDay)
	}
	if resp.Summary.WorstDay == nil || *resp.Summary.WorstDay.OverallPhysical != 3 {
		t.Errorf("Unexpected worst day: %+v", resp.Summary.WorstDay)
	}
}

func TestGetEmotionStats(t *testing.T) {
	entries := []models.JournalEntry{
		recentEntry(1, func(e *models.JournalEntry) {
			e.Emotions = []models.Emotion{{Name: "joy", Intensity: fptr(6)}}
		}),
		recentEntry(2, nil), // no emotions, excluded
	}

	svc := NewStatsService(&mockEntriesService{entries: entries, userFound: true})

	resp, err := svc.GetEmotionStats(context.Background(), 42, stats.Period7)
	if err != nil {
		t.Fatalf("GetEmotionStats returned error: %v", err)
	}
	if resp.EntryCount != 1 {
		t.Errorf("Expected 1 emotion entry, got %d", resp.EntryCount)
	}
	if len(resp.Emotions) != 1 || resp.Emotions[0].Name != "joy" {
		t.Errorf("Unexpected emotion groups: %+v", resp.Emotions)
	}
}

func TestGetSleepStats(t *testing.T) {
	entries := []models.JournalEntry{
		recentEntry(1, func(e *models.JournalEntry) {
			e.SleepData = &models.SleepData{Hours: fptr(7), Quality: fptr(8), DreamDescription: "ocean"}
		}),
		recentEntry(2, nil),
	}

	svc := NewStatsService(&mockEntriesService{entries: entries, userFound: true})

	resp, err := svc.GetSleepStats(context.Background(), 42, stats.Period7)
	if err != nil {
		t.Fatalf("GetSleepStats returned error: %v", err)
	}
	if resp.EntryCount != 1 {
		t.Errorf("Expected 1 sleep entry, got %d", resp.EntryCount)
	}
	if len(resp.Dreams) != 1 || resp.Dreams[0].Description != "ocean" {
		t.Errorf("Unexpected dreams: %+v", resp.Dreams)
	}
}

func TestGetFacetDetails(t *testing.T) {
	entries := []models.JournalEntry{
		recentEntry(1, func(e *models.JournalEntry) {
			e.StressLevel = fptr(8)
			e.Triggers = []string{"work"}
		}),
		recentEntry(2, func(e *models.JournalEntry) {
			e.StressLevel = fptr(6)
			e.Triggers = []string{"work", "family"}
		}),
	}

	svc := NewStatsService(&mockEntriesService{entries: entries, userFound: true})

	resp, err := svc.GetFacetDetails(context.Background(), 42, stats.FacetTrigger, "work", stats.Period7)
	if err != nil {
		t.Fatalf("GetFacetDetails returned error: %v", err)
	}

	if resp.Facet != "trigger" || resp.Name != "work" {
		t.Errorf("Unexpected facet header: %+v", resp)
	}
	if resp.Frequency != 2 {
		t.Errorf("Expected headline frequency 2, got %d", resp.Frequency)
	}
	if resp.Average != 7 {
		t.Errorf("Expected headline average 7, got %v", resp.Average)
	}
	if len(resp.Records) != 2 {
		t.Errorf("Expected 2 detail records, got %d", len(resp.Records))
	}
}

func TestGetFacetDetailsUnknownFacet(t *testing.T) {
	svc := NewStatsService(&mockEntriesService{userFound: true})

	_, err := svc.GetFacetDetails(context.Background(), 42, stats.Facet("weather"), "rain", stats.Period7)
	if err == nil {
		t.Fatal("Expected error for unknown facet, got nil")
	}
}

func TestStatsServiceFetchError(t *testing.T) {
	svc := NewStatsService(&mockEntriesService{err: errors.New("connection refused")})

	if _, err := svc.GetStressStats(context.Background(), 42, stats.Period7); err == nil {
		t.Error("Expected stress view to surface the fetch error")
	}
	if _, err := svc.GetPhysicalStats(context.Background(), 42, stats.Period7); err == nil {
		t.Error("Expected physical view to surface the fetch error")
	}
}

func TestStatsServiceEmptyViews(t *testing.T) {
	svc := NewStatsService(&mockEntriesService{entries: []models.JournalEntry{}, userFound: false})

	resp, err := svc.GetStressStats(context.Background(), 42, stats.Period7)
	if err != nil {
		t.Fatalf("GetStressStats returned error: %v", err)
	}
	if resp.EntryCount != 0 {
		t.Errorf("Expected 0 entries, got %d", resp.EntryCount)
	}
	if resp.Summary.EntryCount != 0 {
		t.Errorf("Expected zero summary, got %+v", resp.Summary)
	}
	if len(resp.Weekdays) != 7 {
		t.Errorf("Expected 7 zero-filled weekday groups, got %d", len(resp.Weekdays))
	}

	physical, err := svc.GetPhysicalStats(context.Background(), 42, stats.Period7)
	if err != nil {
		t.Fatalf("GetPhysicalStats returned error: %v", err)
	}
	if physical.Summary.BestDay != nil || physical.Summary.WorstDay != nil {
		t.Errorf("Expected nil best/worst day on empty input, got %+v", physical.Summary)
	}
}
