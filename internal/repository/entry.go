package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/moodtrackr/backend/internal/models"
)

type entryRepository struct {
	coll *mongo.Collection
}

// NewEntryRepository creates a new MongoDB-backed journal entry repository
func NewEntryRepository(db *mongo.Database) EntryRepository {
	return &entryRepository{
		coll: db.Collection(models.EntryCollection),
	}
}

func (r *entryRepository) GetRecentByUserID(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.JournalEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer cursor.Close(ctx)

	entries := make([]models.JournalEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode entries: %w", err)
	}
	return entries, nil
}
