package routes

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/quizplatform/apiv1/models"
	"github.com/quizplatform/apiv1/sessionstore"
	"github.com/quizplatform/apiv1/utils"
)

func TestRegisterLoginLogout(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "alice@example.com", "secret123")

	if len(env.users.list) != 1 {
		t.Fatalf("users stored = %d, want 1", len(env.users.list))
	}
	if role := env.users.list[0].Role; role != models.RoleStudent {
		t.Fatalf("stored role = %q, want %q", role, models.RoleStudent)
	}

	cookies := env.login(t, "alice", "secret123")

	rec := env.do(t, "GET", "/api/auth/current", nil, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("current: status %d", rec.Code)
	}
	var ident sessionstore.Identity
	if err := json.Unmarshal(rec.Body.Bytes(), &ident); err != nil {
		t.Fatalf("decode identity: %v", err)
	}
	if ident.Username != "alice" || ident.Role != models.RoleStudent {
		t.Fatalf("current identity = %+v", ident)
	}

	rec = env.do(t, "POST", "/api/auth/logout", nil, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout: status %d", rec.Code)
	}
	rec = env.do(t, "GET", "/api/auth/current", nil, cookies)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("current after logout: status %d, want 401", rec.Code)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "alice@example.com", "secret123")

	rec := env.do(t, "POST", "/api/auth/register", map[string]string{
		"username": "alice",
		"email":    "other@example.com",
		"password": "secret123",
	}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := message(t, rec); got != utils.MSG_USER_EXISTS {
		t.Fatalf("message = %q, want %q", got, utils.MSG_USER_EXISTS)
	}
	if len(env.users.list) != 1 {
		t.Fatalf("store modified on failed registration: %d users", len(env.users.list))
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "alice@example.com", "secret123")

	rec := env.do(t, "POST", "/api/auth/register", map[string]string{
		"username": "bob",
		"email":    "alice@example.com",
		"password": "secret123",
	}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := message(t, rec); got != utils.MSG_EMAIL_REGISTERED {
		t.Fatalf("message = %q, want %q", got, utils.MSG_EMAIL_REGISTERED)
	}
	if len(env.users.list) != 1 {
		t.Fatalf("store modified on failed registration: %d users", len(env.users.list))
	}
}

func TestRegisterAdminRejected(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, "POST", "/api/auth/register", map[string]string{
		"username": "mallory",
		"password": "secret123",
		"role":     models.RoleAdmin,
	}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := message(t, rec); got != utils.MSG_CANNOT_REGISTER_ADMIN {
		t.Fatalf("message = %q, want %q", got, utils.MSG_CANNOT_REGISTER_ADMIN)
	}
	if len(env.users.list) != 0 {
		t.Fatal("identity persisted despite admin role rejection")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "", "secret123")

	rec := env.do(t, "POST", "/api/auth/login", map[string]string{
		"username": "alice",
		"password": "wrong",
	}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, "POST", "/api/auth/login", map[string]string{
		"username": "ghost",
		"password": "whatever",
	}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestLoginResponseOmitsPasswordHash(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "", "secret123")
	rec := env.do(t, "POST", "/api/auth/login", map[string]string{
		"username": "alice",
		"password": "secret123",
	}, nil)
	var raw map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, key := range []string{"password", "passwordHash"} {
		if _, ok := raw[key]; ok {
			t.Fatalf("login response leaked %q", key)
		}
	}
}
