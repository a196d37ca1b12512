package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"lumen/internal/domain/user"
	"lumen/internal/shared/errors"
	"lumen/internal/shared/logger"
)

const usersCollection = "users"

type UserRepository struct {
	coll   *mongo.Collection
	logger logger.Interface
}

func NewUserRepository(db *mongo.Database, logger logger.Interface) *UserRepository {
	return &UserRepository{
		coll:   db.Collection(usersCollection),
		logger: logger,
	}
}

// UpsertByGoogleID replaces the full document keyed by google_id, inserting
// if absent. Callers supply the complete profile; nothing is merged.
func (r *UserRepository) UpsertByGoogleID(ctx context.Context, profile *user.Profile) error {
	filter := bson.M{"google_id": profile.GoogleID}

	result, err := r.coll.ReplaceOne(ctx, filter, profile, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	r.logger.Debugw("user upserted",
		"google_id", profile.GoogleID,
		"matched", result.MatchedCount,
		"upserted", result.UpsertedCount)

	return nil
}

func (r *UserRepository) FindByGoogleID(ctx context.Context, googleID string) (*user.Profile, error) {
	var profile user.Profile
	err := r.coll.FindOne(ctx, bson.M{"google_id": googleID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NewNotFoundError("User not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &profile, nil
}

// UpdateFields merges only the supplied fields into the matching document
// and returns the updated profile.
func (r *UserRepository) UpdateFields(ctx context.Context, googleID string, update user.Update) (*user.Profile, error) {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.AboutMe != nil {
		set["about_me"] = *update.AboutMe
	}
	if update.Age != nil {
		set["age"] = *update.Age
	}

	if len(set) > 0 {
		result, err := r.coll.UpdateOne(ctx, bson.M{"google_id": googleID}, bson.M{"$set": set})
		if err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
		if result.MatchedCount == 0 {
			return nil, errors.NewNotFoundError("User not found")
		}
	}

	return r.FindByGoogleID(ctx, googleID)
}
