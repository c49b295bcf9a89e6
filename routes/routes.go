package routes

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/quizplatform/apiv1/otp"
	"github.com/quizplatform/apiv1/sessionstore"
)

var validate *validator.Validate

var (
	logger   *zap.Logger
	users    UserStore
	quizzes  QuizStore
	results  ResultStore
	profiles ProfileStore
	sessions *sessionstore.Store
	codes    *otp.Manager
)

type Deps struct {
	Logger   *zap.Logger
	Users    UserStore
	Quizzes  QuizStore
	Results  ResultStore
	Profiles ProfileStore
	Sessions *sessionstore.Store
	Codes    *otp.Manager
}

func CreateRoutes(r *mux.Router, d Deps) {
	validate = validator.New()
	logger = d.Logger
	users = d.Users
	quizzes = d.Quizzes
	results = d.Results
	profiles = d.Profiles
	sessions = d.Sessions
	codes = d.Codes

	AuthRouter(r.PathPrefix("/api/auth").Subrouter())
	PasswordResetRouter(r.PathPrefix("/api/password-reset").Subrouter())
	QuizRouter(r.PathPrefix("/api/quizzes").Subrouter())
	ResultRouter(r.PathPrefix("/api/results").Subrouter())
	ProfileRouter(r.PathPrefix("/api/profile").Subrouter())
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ResetRequestBody struct {
	Email string `json:"email" validate:"required"`
}

type ResetVerifyBody struct {
	Email string `json:"email" validate:"required"`
	Otp   string `json:"otp" validate:"required"`
}

type ResetPasswordBody struct {
	Email       string `json:"email" validate:"required"`
	Otp         string `json:"otp" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

type QuestionRequest struct {
	QuestionText  string   `json:"questionText" validate:"required"`
	Options       []string `json:"options" validate:"required,min=2"`
	CorrectOption int      `json:"correctOption" validate:"gte=0"`
}

type CreateQuizRequest struct {
	Title           string            `json:"title" validate:"required"`
	Questions       []QuestionRequest `json:"questions" validate:"required,min=1,dive"`
	DurationSeconds *int              `json:"durationSeconds"`
}

type SubmitResultRequest struct {
	// UserID is accepted but ignored; the stored result always carries the
	// session identity.
	UserID string `json:"userId"`
	QuizID string `json:"quizId" validate:"required"`
	Score  int    `json:"score" validate:"gte=0"`
}

type SaveProfileRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Institution string `json:"institution"`
}

type RequestBody interface {
	RegisterRequest | LoginRequest | ResetRequestBody | ResetVerifyBody |
		ResetPasswordBody | CreateQuizRequest | SubmitResultRequest | SaveProfileRequest
}

func DecodeValidBody[B RequestBody](r *http.Request) (B, error) {
	decoder := json.NewDecoder(r.Body)
	var requestBody B
	err := decoder.Decode(&requestBody)
	if err != nil {
		return requestBody, err
	}
	err = validate.Struct(requestBody)
	if err != nil {
		return requestBody, err
	}
	return requestBody, nil
}
