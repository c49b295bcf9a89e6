package sessionstore

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const sessionName = "quiz_session"

// Identity is the snapshot of an authenticated user bound to a session.
// The password hash is deliberately excluded from the binding.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

// Store binds opaque session handles to identity snapshots. The handle
// travels in a signed cookie; the snapshot stays server-side, so logout
// invalidates the session immediately.
type Store struct {
	cookies sessions.Store

	mu       sync.RWMutex
	bindings map[string]Identity
}

func New(secret []byte) *Store {
	cs := sessions.NewCookieStore(secret)
	cs.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   86400 * 7,
	}
	return &Store{
		cookies:  cs,
		bindings: make(map[string]Identity),
	}
}

// Create binds ident to a fresh handle and writes the session cookie.
func (s *Store) Create(w http.ResponseWriter, r *http.Request, ident Identity) error {
	sess, _ := s.cookies.Get(r, sessionName)
	handle := uuid.NewString()
	s.mu.Lock()
	s.bindings[handle] = ident
	s.mu.Unlock()
	sess.Values["sid"] = handle
	return sess.Save(r, w)
}

// Resolve returns the identity bound to the request's session, if any.
func (s *Store) Resolve(r *http.Request) (Identity, bool) {
	sess, err := s.cookies.Get(r, sessionName)
	if err != nil {
		return Identity{}, false
	}
	handle, ok := sess.Values["sid"].(string)
	if !ok {
		return Identity{}, false
	}
	s.mu.RLock()
	ident, ok := s.bindings[handle]
	s.mu.RUnlock()
	return ident, ok
}

// Destroy drops the server-side binding and expires the cookie.
func (s *Store) Destroy(w http.ResponseWriter, r *http.Request) error {
	sess, err := s.cookies.Get(r, sessionName)
	if err != nil {
		return nil
	}
	if handle, ok := sess.Values["sid"].(string); ok {
		s.mu.Lock()
		delete(s.bindings, handle)
		s.mu.Unlock()
	}
	delete(sess.Values, "sid")
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}
