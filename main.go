package main

import (
	"context"
	"crypto/rand"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/quizplatform/apiv1/dbhelper"
	"github.com/quizplatform/apiv1/mailer"
	"github.com/quizplatform/apiv1/otp"
	"github.com/quizplatform/apiv1/routes"
	"github.com/quizplatform/apiv1/sessionstore"
	"github.com/quizplatform/apiv1/utils"
)

func main() {
	// Optional .env for local development.
	godotenv.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := dbhelper.OpenDB(ctx); err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	if err := dbhelper.InitDB(ctx); err != nil {
		logger.Fatal("create indexes", zap.Error(err))
	}
	adminUser := getenv(utils.ADMIN_USERNAME, "admin")
	adminPass := getenv(utils.ADMIN_PASSWORD, "admin123")
	if err := dbhelper.EnsureAdmin(ctx, adminUser, adminPass, logger); err != nil {
		logger.Fatal("bootstrap admin account", zap.Error(err))
	}

	sessions := sessionstore.New(sessionKey(logger))
	sender := mailer.FromEnv(logger)
	codes := otp.NewManager(dbhelper.NewCodeStore(dbhelper.Database), sender, logger)

	r := mux.NewRouter()
	r.StrictSlash(true)
	routes.CreateRoutes(r, routes.Deps{
		Logger:   logger,
		Users:    dbhelper.NewUserStore(dbhelper.Database),
		Quizzes:  dbhelper.NewQuizStore(dbhelper.Database),
		Results:  dbhelper.NewResultStore(dbhelper.Database),
		Profiles: dbhelper.NewProfileStore(dbhelper.Database),
		Sessions: sessions,
		Codes:    codes,
	})

	port := getenv(utils.PORT, "8080")
	logger.Info("server listening", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func sessionKey(logger *zap.Logger) []byte {
	if v := os.Getenv(utils.SESSION_KEY); v != "" {
		return []byte(v)
	}
	logger.Warn("SESSION_KEY not set, sessions will not survive a restart")
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		logger.Fatal("generate session key", zap.Error(err))
	}
	return key
}
