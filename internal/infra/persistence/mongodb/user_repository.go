package mongodb

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type userRepository struct {
	users *mongo.Collection
}

// NewUserRepository is the constructor for the MongoDB user repository.
func NewUserRepository(db *mongo.Database, collections Collections) repository.UserRepository {
	return &userRepository{
		users: db.Collection(collections.Users),
	}
}

// FindUserByID retrieves a user and the embedded location.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (_ *entity.User, err error) {
	defer observe("find_user", time.Now(), &err)

	var doc userDoc
	if err := repo.users.FindOne(ctx, bson.D{{Key: "_id", Value: id.String()}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return doc.toUser()
}

// UpdateUserLocation overwrites only the embedded location of a user.
func (repo *userRepository) UpdateUserLocation(ctx context.Context, id uuid.UUID, location entity.UserLocation) (err error) {
	defer observe("update_user_location", time.Now(), &err)

	update := locationUpdate("location.", "formattedAddress", location.FormattedAddress, location.Address, location.Coordinates)
	result, err := repo.users.UpdateOne(ctx, bson.D{{Key: "_id", Value: id.String()}}, update)
	if err != nil {
		return errors.Wrap(err, "failed to update user location")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
