package service

import (
	"context"
	"fmt"
	"time"

	"github.com/moodtrackr/backend/internal/models"
	"github.com/moodtrackr/backend/internal/stats"
)

type statsService struct {
	entries EntriesService
}

// NewStatsService creates a new statistics service
func NewStatsService(entries EntriesService) StatsService {
	return &statsService{
		entries: entries,
	}
}

// fetchWindow fetches the user's entries and applies the trailing-window
// filter. The fetch is the single external boundary of the stats core; a
// failed fetch surfaces here and every view built on it stays empty.
func (s *statsService) fetchWindow(ctx context.Context, telegramID int64, period stats.Period) ([]models.JournalEntry, error) {
	entries, _, err := s.entries.GetEntries(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch entries: %w", err)
	}
	return stats.FilterByPeriod(entries, period, time.Now()), nil
}

func (s *statsService) GetPhysicalStats(ctx context.Context, telegramID int64, period stats.Period) (*models.PhysicalStatsResponse, error) {
	window, err := s.fetchWindow(ctx, telegramID, period)
	if err != nil {
		return nil, err
	}

	physical := stats.Normalize(window, stats.HasPhysicalScore)
	symptoms := stats.SymptomGroups(physical)

	return &models.PhysicalStatsResponse{
		Period:        period.String(),
		EntryCount:    len(physical),
		Series:        stats.EntrySeries(physical),
		Symptoms:      symptoms,
		SymptomsByDay: stats.SymptomsByDay(physical),
		Summary:       stats.SummarizePhysical(physical, symptoms),
	}, nil
}

func (s *statsService) GetStressStats(ctx context.Context, telegramID int64, period stats.Period) (*models.StressStatsResponse, error) {
	window, err := s.fetchWindow(ctx, telegramID, period)
	if err != nil {
		return nil, err
	}

	stress := stats.Normalize(window, stats.HasStressLevel)
	triggers := stats.TriggerGroups(stress)

	return &models.StressStatsResponse{
		Period:      period.String(),
		EntryCount:  len(stress),
		Series:      stats.EntrySeries(stress),
		Triggers:    triggers,
		TimeOfDay:   stats.TimeOfDayGroups(stress),
		Weekdays:    stats.WeekdayGroups(stress),
		Correlation: stats.CorrelationPoints(stress),
		Summary:     stats.SummarizeStress(stress, triggers),
	}, nil
}

func (s *statsService) GetEmotionStats(ctx context.Context, telegramID int64, period stats.Period) (*models.EmotionStatsResponse, error) {
	window, err := s.fetchWindow(ctx, telegramID, period)
	if err != nil {
		return nil, err
	}

	emotions := stats.Normalize(window, stats.HasEmotions)

	return &models.EmotionStatsResponse{
		Period:     period.String(),
		EntryCount: len(emotions),
		Emotions:   stats.EmotionGroups(emotions),
		ByDay:      stats.EmotionsByDay(emotions),
	}, nil
}

func (s *statsService) GetSleepStats(ctx context.Context, telegramID int64, period stats.Period) (*models.SleepStatsResponse, error) {
	window, err := s.fetchWindow(ctx, telegramID, period)
	if err != nil {
		return nil, err
	}

	sleep := stats.Normalize(window, stats.HasSleepData)

	return &models.SleepStatsResponse{
		Period:     period.String(),
		EntryCount: len(sleep),
		Series:     stats.SleepSeries(sleep),
		Dreams:     stats.Dreams(sleep),
	}, nil
}

func (s *statsService) GetFacetDetails(ctx context.Context, telegramID int64, facet stats.Facet, name string, period stats.Period) (*models.FacetDetailResponse, error) {
	window, err := s.fetchWindow(ctx, telegramID, period)
	if err != nil {
		return nil, err
	}

	var normalized []models.JournalEntry
	var groups []models.FacetGroup
	switch facet {
	case stats.FacetEmotion:
		normalized = stats.Normalize(window, stats.HasEmotions)
		groups = stats.EmotionGroups(normalized)
	case stats.FacetSymptom:
		normalized = stats.Normalize(window, stats.HasPhysicalScore)
		groups = stats.SymptomGroups(normalized)
	case stats.FacetTrigger:
		normalized = stats.Normalize(window, stats.HasStressLevel)
		groups = stats.TriggerGroups(normalized)
	default:
		return nil, fmt.Errorf("unknown facet %q", facet)
	}

	resp := &models.FacetDetailResponse{
		Period:  period.String(),
		Facet:   string(facet),
		Name:    name,
		Records: stats.ResolveDetails(normalized, facet, name),
	}
	for _, g := range groups {
		if g.Name == name {
			resp.Frequency = g.Frequency
			resp.Average = g.Average
			resp.Percentage = g.Percentage
			break
		}
	}
	return resp, nil
}
