package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/moodtrackr/backend/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// GetByTelegramID returns the user for a Telegram account, or nil
	// when no such user exists.
	GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error)
}

// EntryRepository defines the interface for journal entry data access
type EntryRepository interface {
	// GetRecentByUserID returns up to limit entries for the user,
	// newest first by timestamp.
	GetRecentByUserID(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.JournalEntry, error)
}
