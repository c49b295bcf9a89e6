package middlewares

import (
	"context"
	"net/http"

	"github.com/quizplatform/apiv1/sessionstore"
	"github.com/quizplatform/apiv1/utils"
)

type contextKey string

const identityContextKey contextKey = "sessionIdentity"

// RequireSession rejects requests without an active session and otherwise
// places the bound identity on the request context.
func RequireSession(store *sessionstore.Store, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := store.Resolve(r)
		if !ok {
			utils.WriteJSON(w, http.StatusUnauthorized, map[string]string{"message": utils.MSG_LOGIN_REQUIRED})
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), identityContextKey, ident)))
	}
}

// RequireRole additionally checks the session identity's role. The message
// is per-route so callers keep their own wording.
func RequireRole(store *sessionstore.Store, role, message string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := store.Resolve(r)
		if !ok || ident.Role != role {
			utils.WriteJSON(w, http.StatusUnauthorized, map[string]string{"message": message})
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), identityContextKey, ident)))
	}
}

// IdentityFrom returns the identity placed on the context by RequireSession
// or RequireRole.
func IdentityFrom(ctx context.Context) (sessionstore.Identity, bool) {
	ident, ok := ctx.Value(identityContextKey).(sessionstore.Identity)
	return ident, ok
}
