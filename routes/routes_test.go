package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/quizplatform/apiv1/models"
	"github.com/quizplatform/apiv1/otp"
	"github.com/quizplatform/apiv1/sessionstore"
	"github.com/quizplatform/apiv1/utils"
)

// In-memory store fakes. They implement the same interfaces dbhelper's
// mongo stores do, so the full HTTP surface is exercised without a
// database.

type memUsers struct {
	list []*models.User
}

func (s *memUsers) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range s.list {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (s *memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, nil
	}
	for _, u := range s.list {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *memUsers) Insert(_ context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.list = append(s.list, user)
	return nil
}

func (s *memUsers) UpdatePassword(_ context.Context, id primitive.ObjectID, passwordHash string) error {
	for _, u := range s.list {
		if u.ID == id {
			u.PasswordHash = passwordHash
		}
	}
	return nil
}

type memQuizzes struct {
	list []models.Quiz
}

func (s *memQuizzes) Find(_ context.Context, page, size int, sortBy string) ([]models.Quiz, int64, error) {
	all := make([]models.Quiz, len(s.list))
	copy(all, s.list)
	if sortBy == "title" {
		sort.Slice(all, func(i, j int) bool { return all[i].Title < all[j].Title })
	}
	return paginate(all, page, size), int64(len(all)), nil
}

func (s *memQuizzes) FindByID(_ context.Context, id string) (*models.Quiz, error) {
	for i := range s.list {
		if s.list[i].ID.Hex() == id {
			return &s.list[i], nil
		}
	}
	return nil, nil
}

func (s *memQuizzes) Insert(_ context.Context, quiz *models.Quiz) error {
	if quiz.ID.IsZero() {
		quiz.ID = primitive.NewObjectID()
	}
	s.list = append(s.list, *quiz)
	return nil
}

type memResults struct {
	list []models.Result
}

func (s *memResults) Insert(_ context.Context, result *models.Result) error {
	if result.ID.IsZero() {
		result.ID = primitive.NewObjectID()
	}
	s.list = append(s.list, *result)
	return nil
}

func (s *memResults) FindByUserID(_ context.Context, userID string, page, size int) ([]models.Result, int64, error) {
	var matched []models.Result
	for i := len(s.list) - 1; i >= 0; i-- {
		if s.list[i].UserID == userID {
			matched = append(matched, s.list[i])
		}
	}
	return paginate(matched, page, size), int64(len(matched)), nil
}

func (s *memResults) FindAll(_ context.Context, page, size int) ([]models.Result, int64, error) {
	var all []models.Result
	for i := len(s.list) - 1; i >= 0; i-- {
		all = append(all, s.list[i])
	}
	return paginate(all, page, size), int64(len(all)), nil
}

type memProfiles struct {
	byUser map[string]*models.Profile
}

func (s *memProfiles) FindByUserID(_ context.Context, userID string) (*models.Profile, error) {
	if p, ok := s.byUser[userID]; ok {
		c := *p
		return &c, nil
	}
	return nil, nil
}

func (s *memProfiles) Upsert(_ context.Context, profile *models.Profile) error {
	c := *profile
	if existing, ok := s.byUser[profile.UserID]; ok {
		c.ID = existing.ID
	} else if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	s.byUser[profile.UserID] = &c
	return nil
}

type memCodes struct {
	list []*models.ResetCode
}

func (s *memCodes) Find(_ context.Context, email, code string) (*models.ResetCode, error) {
	for _, rc := range s.list {
		if rc.Email == email && rc.Code == code {
			c := *rc
			return &c, nil
		}
	}
	return nil, nil
}

func (s *memCodes) DeleteByEmail(_ context.Context, email string) error {
	kept := s.list[:0]
	for _, rc := range s.list {
		if rc.Email != email {
			kept = append(kept, rc)
		}
	}
	s.list = kept
	return nil
}

func (s *memCodes) Insert(_ context.Context, rc *models.ResetCode) error {
	if rc.ID.IsZero() {
		rc.ID = primitive.NewObjectID()
	}
	s.list = append(s.list, rc)
	return nil
}

func (s *memCodes) MarkUsed(_ context.Context, id primitive.ObjectID) error {
	for _, rc := range s.list {
		if rc.ID == id {
			rc.Used = true
		}
	}
	return nil
}

func paginate[T any](items []T, page, size int) []T {
	start := page * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

type captureSender struct {
	lastEmail string
	lastCode  string
}

func (s *captureSender) SendResetCode(email, code string) error {
	s.lastEmail = email
	s.lastCode = code
	return nil
}

type testEnv struct {
	router   *mux.Router
	users    *memUsers
	quizzes  *memQuizzes
	results  *memResults
	profiles *memProfiles
	codeDB   *memCodes
	sender   *captureSender
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		users:    &memUsers{},
		quizzes:  &memQuizzes{},
		results:  &memResults{},
		profiles: &memProfiles{byUser: map[string]*models.Profile{}},
		codeDB:   &memCodes{},
		sender:   &captureSender{},
	}
	logger := zap.NewNop()
	env.router = mux.NewRouter()
	env.router.StrictSlash(true)
	CreateRoutes(env.router, Deps{
		Logger:   logger,
		Users:    env.users,
		Quizzes:  env.quizzes,
		Results:  env.results,
		Profiles: env.profiles,
		Sessions: sessionstore.New([]byte("0123456789abcdef0123456789abcdef")),
		Codes:    otp.NewManager(env.codeDB, env.sender, logger),
	})
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) register(t *testing.T, username, email, password string) {
	t.Helper()
	rec := e.do(t, "POST", "/api/auth/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("register %s: status %d, body %s", username, rec.Code, rec.Body.String())
	}
}

func (e *testEnv) login(t *testing.T, username, password string) []*http.Cookie {
	t.Helper()
	rec := e.do(t, "POST", "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: status %d, body %s", username, rec.Code, rec.Body.String())
	}
	return rec.Result().Cookies()
}

func (e *testEnv) seedAdmin(t *testing.T, username, password string) {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	e.users.list = append(e.users.list, &models.User{
		ID:           primitive.NewObjectID(),
		Username:     username,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	})
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var m MessageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode message from %q: %v", rec.Body.String(), err)
	}
	return m.Message
}

type pageEnvelope struct {
	Items       []json.RawMessage `json:"items"`
	CurrentPage int               `json:"currentPage"`
	TotalItems  int64             `json:"totalItems"`
	TotalPages  int               `json:"totalPages"`
	HasNext     bool              `json:"hasNext"`
	HasPrevious bool              `json:"hasPrevious"`
}

func decodePage(t *testing.T, rec *httptest.ResponseRecorder) pageEnvelope {
	t.Helper()
	var p pageEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode page from %q: %v", rec.Body.String(), err)
	}
	return p
}
