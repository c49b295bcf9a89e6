package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/quizplatform/apiv1/middlewares"
	"github.com/quizplatform/apiv1/models"
	"github.com/quizplatform/apiv1/utils"
)

func ResultRouter(s *mux.Router) {
	s.HandleFunc("/submit", middlewares.RequireSession(sessions, handle(SubmitResult))).Methods("POST")
	s.HandleFunc("/my-results", middlewares.RequireSession(sessions, handle(MyResults))).Methods("GET")
	s.HandleFunc("/all", middlewares.RequireRole(sessions, models.RoleAdmin, utils.MSG_UNAUTHORIZED, handle(AllResults))).Methods("GET")
}

// SubmitResult stores a result for the session identity. Any userId in the
// request body is discarded.
func SubmitResult(w http.ResponseWriter, r *http.Request) error {
	req, err := DecodeValidBody[SubmitResultRequest](r)
	if err != nil {
		return utils.ValidationError(utils.MSG_INVALID_BODY)
	}
	ident, _ := middlewares.IdentityFrom(r.Context())
	result := &models.Result{
		UserID: ident.ID,
		QuizID: req.QuizID,
		Score:  req.Score,
	}
	if err := results.Insert(r.Context(), result); err != nil {
		return utils.Internal(err)
	}
	utils.WriteJSON(w, http.StatusOK, MessageResponse{Message: utils.MSG_RESULT_SUBMITTED})
	return nil
}

func MyResults(w http.ResponseWriter, r *http.Request) error {
	ident, _ := middlewares.IdentityFrom(r.Context())
	page, size, _ := pageParams(r, "")
	items, total, err := results.FindByUserID(r.Context(), ident.ID, page, size)
	if err != nil {
		return utils.Internal(err)
	}
	utils.WriteJSON(w, http.StatusOK, utils.NewPage(items, page, size, total))
	return nil
}

func AllResults(w http.ResponseWriter, r *http.Request) error {
	page, size, _ := pageParams(r, "")
	items, total, err := results.FindAll(r.Context(), page, size)
	if err != nil {
		return utils.Internal(err)
	}
	utils.WriteJSON(w, http.StatusOK, utils.NewPage(items, page, size, total))
	return nil
}
