package dbhelper

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quizplatform/apiv1/models"
)

type ResultStore struct {
	col *mongo.Collection
}

func NewResultStore(db *mongo.Database) *ResultStore {
	return &ResultStore{col: db.Collection("results")}
}

func (s *ResultStore) Insert(ctx context.Context, result *models.Result) error {
	res, err := s.col.InsertOne(ctx, result)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		result.ID = oid
	}
	return nil
}

func (s *ResultStore) FindByUserID(ctx context.Context, userID string, page, size int) ([]models.Result, int64, error) {
	return s.find(ctx, bson.M{"userId": userID}, page, size)
}

func (s *ResultStore) FindAll(ctx context.Context, page, size int) ([]models.Result, int64, error) {
	return s.find(ctx, bson.M{}, page, size)
}

func (s *ResultStore) find(ctx context.Context, filter bson.M, page, size int) ([]models.Result, int64, error) {
	total, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	// Newest first.
	opts := options.Find().
		SetSkip(int64(page * size)).
		SetLimit(int64(size)).
		SetSort(bson.D{{Key: "_id", Value: -1}})
	cur, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	results := []models.Result{}
	if err := cur.All(ctx, &results); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}
