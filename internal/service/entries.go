package service

import (
	"context"
	"fmt"

	"github.com/moodtrackr/backend/internal/models"
	"github.com/moodtrackr/backend/internal/repository"
)

// FetchLimit bounds the entry fetch: the 200 most recent entries per user.
const FetchLimit = 200

type entriesService struct {
	userRepo  repository.UserRepository
	entryRepo repository.EntryRepository
}

// NewEntriesService creates a new entries service
func NewEntriesService(userRepo repository.UserRepository, entryRepo repository.EntryRepository) EntriesService {
	return &entriesService{
		userRepo:  userRepo,
		entryRepo: entryRepo,
	}
}

func (s *entriesService) GetEntries(ctx context.Context, telegramID int64) ([]models.JournalEntry, bool, error) {
	user, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return []models.JournalEntry{}, false, nil
	}

	entries, err := s.entryRepo.GetRecentByUserID(ctx, user.ID, FetchLimit)
	if err != nil {
		return nil, true, fmt.Errorf("failed to get entries: %w", err)
	}
	return entries, true, nil
}
