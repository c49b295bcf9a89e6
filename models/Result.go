package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Result struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID string             `bson:"userId" json:"userId"`
	QuizID string             `bson:"quizId" json:"quizId"`
	Score  int                `bson:"score" json:"score"`
}
