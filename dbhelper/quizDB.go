package dbhelper

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quizplatform/apiv1/models"
)

type QuizStore struct {
	col *mongo.Collection
}

func NewQuizStore(db *mongo.Database) *QuizStore {
	return &QuizStore{col: db.Collection("quizzes")}
}

func (s *QuizStore) Find(ctx context.Context, page, size int, sortBy string) ([]models.Quiz, int64, error) {
	total, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}
	opts := options.Find().
		SetSkip(int64(page * size)).
		SetLimit(int64(size)).
		SetSort(bson.D{{Key: sortBy, Value: 1}})
	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	quizzes := []models.Quiz{}
	if err := cur.All(ctx, &quizzes); err != nil {
		return nil, 0, err
	}
	return quizzes, total, nil
}

func (s *QuizStore) FindByID(ctx context.Context, id string) (*models.Quiz, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id cannot name a quiz.
		return nil, nil
	}
	var quiz models.Quiz
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&quiz)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (s *QuizStore) Insert(ctx context.Context, quiz *models.Quiz) error {
	res, err := s.col.InsertOne(ctx, quiz)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		quiz.ID = oid
	}
	return nil
}
