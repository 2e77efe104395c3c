package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yashdave182/FinAgent/internal/pkg/consts"
	"github.com/yashdave182/FinAgent/internal/pkg/db"
	"github.com/yashdave182/FinAgent/internal/pkg/logger"
	"github.com/yashdave182/FinAgent/internal/pkg/models"
)

type ProfileRepository struct {
	repo *MongoRepository[models.UserProfile]
}

func NewProfileRepository() *ProfileRepository {
	collection := db.MDB.Database.Collection(consts.UserProfilesCollection)
	mrepo := NewMongoRepository[models.UserProfile](collection)
	return &ProfileRepository{repo: mrepo}
}

// GetUserProfile looks up a profile by userId. A missing profile surfaces as
// consts.ErrorUserProfileNotFound, any other failure is passed through.
func (r *ProfileRepository) GetUserProfile(ctx context.Context, userId string) (*models.UserProfile, error) {

	filter := bson.M{"userId": userId}

	profile, err := r.repo.Read(filter)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorUserProfileNotFound
		}
		logger.Error(ctx, "ProfileRepository : error reading profile for %v: %v", userId, err)
		return nil, err
	}

	return &profile, nil
}

func (r *ProfileRepository) UpsertUserProfile(ctx context.Context, profile models.UserProfile) error {

	filter := bson.M{"userId": profile.UserId}
	update := bson.M{"$set": profile}

	if err := r.repo.Upsert(filter, update); err != nil {
		logger.Error(ctx, "ProfileRepository : error upserting profile for %v: %v", profile.UserId, err)
		return err
	}

	return nil
}
