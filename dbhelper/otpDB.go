package dbhelper

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quizplatform/apiv1/models"
)

// CodeStore is the mongo-backed store behind otp.Manager.
type CodeStore struct {
	col *mongo.Collection
}

func NewCodeStore(db *mongo.Database) *CodeStore {
	return &CodeStore{col: db.Collection("reset_codes")}
}

func (s *CodeStore) Find(ctx context.Context, email, code string) (*models.ResetCode, error) {
	var rc models.ResetCode
	err := s.col.FindOne(ctx, bson.M{"email": email, "code": code}).Decode(&rc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rc, nil
}

func (s *CodeStore) DeleteByEmail(ctx context.Context, email string) error {
	_, err := s.col.DeleteMany(ctx, bson.M{"email": email})
	return err
}

func (s *CodeStore) Insert(ctx context.Context, rc *models.ResetCode) error {
	res, err := s.col.InsertOne(ctx, rc)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		rc.ID = oid
	}
	return nil
}

func (s *CodeStore) MarkUsed(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"used": true}})
	return err
}
