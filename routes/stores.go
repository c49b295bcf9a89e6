package routes

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/quizplatform/apiv1/models"
)

// Store interfaces are defined here, on the consuming side; dbhelper
// provides the mongo-backed implementations and tests provide in-memory
// ones. Find methods return (nil, nil) when nothing matches.

type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
}

type QuizStore interface {
	Find(ctx context.Context, page, size int, sortBy string) ([]models.Quiz, int64, error)
	FindByID(ctx context.Context, id string) (*models.Quiz, error)
	Insert(ctx context.Context, quiz *models.Quiz) error
}

type ResultStore interface {
	Insert(ctx context.Context, result *models.Result) error
	FindByUserID(ctx context.Context, userID string, page, size int) ([]models.Result, int64, error)
	FindAll(ctx context.Context, page, size int) ([]models.Result, int64, error)
}

type ProfileStore interface {
	FindByUserID(ctx context.Context, userID string) (*models.Profile, error)
	Upsert(ctx context.Context, profile *models.Profile) error
}
