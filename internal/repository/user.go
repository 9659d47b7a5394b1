package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/moodtrackr/backend/internal/models"
)

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a new MongoDB-backed user repository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		coll: db.Collection(models.UserCollection),
	}
}

func (r *userRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"telegramId": telegramID}).Decode(&user)
	if err != nil {
		// A missing user is a valid state, not an error.
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by telegram id: %w", err)
	}
	return &user, nil
}
