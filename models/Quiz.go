package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Question struct {
	QuestionText  string   `bson:"questionText" json:"questionText"`
	Options       []string `bson:"options" json:"options"`
	CorrectOption int      `bson:"correctOption" json:"correctOption"`
}

type Quiz struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string             `bson:"title" json:"title"`
	Questions       []Question         `bson:"questions" json:"questions"`
	DurationSeconds *int               `bson:"durationSeconds,omitempty" json:"durationSeconds,omitempty"`
}
