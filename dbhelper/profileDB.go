package dbhelper

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quizplatform/apiv1/models"
)

type ProfileStore struct {
	col *mongo.Collection
}

func NewProfileStore(db *mongo.Database) *ProfileStore {
	return &ProfileStore{col: db.Collection("profiles")}
}

func (s *ProfileStore) FindByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := s.col.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert writes the profile keyed by userId, creating it on first save.
func (s *ProfileStore) Upsert(ctx context.Context, profile *models.Profile) error {
	filter := bson.M{"userId": profile.UserID}
	update := bson.M{"$set": bson.M{
		"userId":      profile.UserID,
		"fullName":    profile.FullName,
		"email":       profile.Email,
		"phone":       profile.Phone,
		"institution": profile.Institution,
	}}
	_, err := s.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
