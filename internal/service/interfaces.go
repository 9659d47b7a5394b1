package service

import (
	"context"

	"github.com/moodtrackr/backend/internal/models"
	"github.com/moodtrackr/backend/internal/stats"
)

// EntriesService defines the interface for the journal entry read path
type EntriesService interface {
	// GetEntries returns the most recent entries for a Telegram account,
	// newest first, and whether the account is known. An unknown account
	// yields an empty list, not an error.
	GetEntries(ctx context.Context, telegramID int64) ([]models.JournalEntry, bool, error)
}

// StatsService defines the interface for the derived statistics views
type StatsService interface {
	GetPhysicalStats(ctx context.Context, telegramID int64, period stats.Period) (*models.PhysicalStatsResponse, error)
	GetStressStats(ctx context.Context, telegramID int64, period stats.Period) (*models.StressStatsResponse, error)
	GetEmotionStats(ctx context.Context, telegramID int64, period stats.Period) (*models.EmotionStatsResponse, error)
	GetSleepStats(ctx context.Context, telegramID int64, period stats.Period) (*models.SleepStatsResponse, error)
	GetFacetDetails(ctx context.Context, telegramID int64, facet stats.Facet, name string, period stats.Period) (*models.FacetDetailResponse, error)
}
