package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/quizplatform/apiv1/middlewares"
	"github.com/quizplatform/apiv1/models"
	"github.com/quizplatform/apiv1/sessionstore"
	"github.com/quizplatform/apiv1/utils"
)

func AuthRouter(s *mux.Router) {
	s.HandleFunc("/register", handle(Register)).Methods("POST")
	s.HandleFunc("/login", handle(Login)).Methods("POST")
	s.HandleFunc("/logout", middlewares.RequireSession(sessions, handle(Logout))).Methods("POST")
	s.HandleFunc("/current", middlewares.RequireSession(sessions, handle(CurrentUser))).Methods("GET")
}

// Register creates a STUDENT account. Requesting the ADMIN role is rejected
// outright rather than silently downgraded, and duplicate usernames and
// emails fail with distinct messages.
func Register(w http.ResponseWriter, r *http.Request) error {
	req, err := DecodeValidBody[RegisterRequest](r)
	if err != nil {
		return utils.ValidationError(utils.MSG_INVALID_BODY)
	}
	ctx := r.Context()
	existing, err := users.FindByUsername(ctx, req.Username)
	if err != nil {
		return utils.Internal(err)
	}
	if existing != nil {
		return utils.ValidationError(utils.MSG_USER_EXISTS)
	}
	if req.Email != "" {
		byEmail, err := users.FindByEmail(ctx, req.Email)
		if err != nil {
			return utils.Internal(err)
		}
		if byEmail != nil {
			return utils.ValidationError(utils.MSG_EMAIL_REGISTERED)
		}
	}
	if req.Role == models.RoleAdmin {
		return utils.ValidationError(utils.MSG_CANNOT_REGISTER_ADMIN)
	}
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return utils.Internal(err)
	}
	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleStudent,
	}
	if err := users.Insert(ctx, user); err != nil {
		return utils.Internal(err)
	}
	utils.WriteJSON(w, http.StatusOK, MessageResponse{Message: utils.MSG_USER_REGISTERED})
	return nil
}

func Login(w http.ResponseWriter, r *http.Request) error {
	req, err := DecodeValidBody[LoginRequest](r)
	if err != nil {
		return utils.ValidationError(utils.MSG_INVALID_BODY)
	}
	user, err := users.FindByUsername(r.Context(), req.Username)
	if err != nil {
		return utils.Internal(err)
	}
	if user == nil || utils.ComparePasswords(user.PasswordHash, req.Password) != nil {
		return utils.Unauthorized(utils.MSG_INVALID_CREDENTIALS)
	}
	ident := sessionstore.Identity{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
	if err := sessions.Create(w, r, ident); err != nil {
		return utils.Internal(err)
	}
	utils.WriteJSON(w, http.StatusOK, ident)
	return nil
}

func Logout(w http.ResponseWriter, r *http.Request) error {
	if err := sessions.Destroy(w, r); err != nil {
		return utils.Internal(err)
	}
	utils.WriteJSON(w, http.StatusOK, MessageResponse{Message: utils.MSG_LOGGED_OUT})
	return nil
}

func CurrentUser(w http.ResponseWriter, r *http.Request) error {
	ident, _ := middlewares.IdentityFrom(r.Context())
	utils.WriteJSON(w, http.StatusOK, ident)
	return nil
}
