package dbhelper

import (
	"context"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/quizplatform/apiv1/models"
	"github.com/quizplatform/apiv1/utils"
)

var (
	Client   *mongo.Client
	Database *mongo.Database
)

func OpenDB(ctx context.Context) error {
	uri := os.Getenv(utils.MONGO_URI)
	if uri == "" {
		uri = "mongodb://127.0.0.1:27017"
	}
	name := os.Getenv(utils.MONGO_DB)
	if name == "" {
		name = "quizplatform"
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return err
	}
	Client = client
	Database = client.Database(name)
	return nil
}

// InitDB creates the indexes the stores rely on: unique usernames, unique
// (sparse) emails, one profile per user, and keyed lookups for reset codes
// and results.
func InitDB(ctx context.Context) error {
	_, err := Database.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetSparse(true)},
	})
	if err != nil {
		return err
	}
	_, err = Database.Collection("profiles").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = Database.Collection("reset_codes").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
	})
	if err != nil {
		return err
	}
	_, err = Database.Collection("results").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
	})
	return err
}

// EnsureAdmin creates the bootstrap admin account if it does not exist yet.
// Idempotent: a second start with the same configuration changes nothing.
func EnsureAdmin(ctx context.Context, username, password string, logger *zap.Logger) error {
	store := NewUserStore(Database)
	existing, err := store.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	admin := &models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := store.Insert(ctx, admin); err != nil {
		return err
	}
	logger.Info("default admin account created; change the default password",
		zap.String("username", username))
	return nil
}
