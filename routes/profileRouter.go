package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/quizplatform/apiv1/middlewares"
	"github.com/quizplatform/apiv1/models"
	"github.com/quizplatform/apiv1/utils"
)

func ProfileRouter(s *mux.Router) {
	s.HandleFunc("", middlewares.RequireSession(sessions, handle(GetProfile))).Methods("GET")
	s.HandleFunc("", middlewares.RequireSession(sessions, handle(saveProfile(utils.MSG_PROFILE_SAVED)))).Methods("POST")
	s.HandleFunc("", middlewares.RequireSession(sessions, handle(saveProfile(utils.MSG_PROFILE_UPDATED)))).Methods("PUT")
}

// GetProfile returns the stored profile or, when none exists yet, a default
// one carrying the username as a placeholder email. The default is not
// persisted.
func GetProfile(w http.ResponseWriter, r *http.Request) error {
	ident, _ := middlewares.IdentityFrom(r.Context())
	profile, err := profiles.FindByUserID(r.Context(), ident.ID)
	if err != nil {
		return utils.Internal(err)
	}
	if profile == nil {
		profile = &models.Profile{
			UserID: ident.ID,
			Email:  ident.Username,
		}
	}
	utils.WriteJSON(w, http.StatusOK, profile)
	return nil
}

// saveProfile upserts the profile for the session identity; POST and PUT
// share the semantics and differ only in the confirmation message.
func saveProfile(message string) func(w http.ResponseWriter, r *http.Request) error {
	return func(w http.ResponseWriter, r *http.Request) error {
		req, err := DecodeValidBody[SaveProfileRequest](r)
		if err != nil {
			return utils.ValidationError(utils.MSG_INVALID_BODY)
		}
		ident, _ := middlewares.IdentityFrom(r.Context())
		profile := &models.Profile{
			UserID:      ident.ID,
			FullName:    req.FullName,
			Email:       req.Email,
			Phone:       req.Phone,
			Institution: req.Institution,
		}
		if err := profiles.Upsert(r.Context(), profile); err != nil {
			return utils.Internal(err)
		}
		utils.WriteJSON(w, http.StatusOK, MessageResponse{Message: message})
		return nil
	}
}
