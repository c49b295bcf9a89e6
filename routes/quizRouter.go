package routes

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/quizplatform/apiv1/middlewares"
	"github.com/quizplatform/apiv1/models"
	"github.com/quizplatform/apiv1/utils"
)

func QuizRouter(s *mux.Router) {
	s.HandleFunc("", handle(ListQuizzes)).Methods("GET")
	s.HandleFunc("", middlewares.RequireRole(sessions, models.RoleAdmin, utils.MSG_ADMIN_ONLY_QUIZ, handle(CreateQuiz))).Methods("POST")
	s.HandleFunc("/{id}", handle(GetQuiz)).Methods("GET")
}

func ListQuizzes(w http.ResponseWriter, r *http.Request) error {
	page, size, sortBy := pageParams(r, "title")
	items, total, err := quizzes.Find(r.Context(), page, size, sortBy)
	if err != nil {
		return utils.Internal(err)
	}
	utils.WriteJSON(w, http.StatusOK, utils.NewPage(items, page, size, total))
	return nil
}

func GetQuiz(w http.ResponseWriter, r *http.Request) error {
	id := mux.Vars(r)["id"]
	quiz, err := quizzes.FindByID(r.Context(), id)
	if err != nil {
		return utils.Internal(err)
	}
	if quiz == nil {
		return utils.NotFound(utils.MSG_QUIZ_NOT_FOUND)
	}
	utils.WriteJSON(w, http.StatusOK, quiz)
	return nil
}

func CreateQuiz(w http.ResponseWriter, r *http.Request) error {
	req, err := DecodeValidBody[CreateQuizRequest](r)
	if err != nil {
		return utils.ValidationError(utils.MSG_INVALID_BODY)
	}
	questions := make([]models.Question, 0, len(req.Questions))
	for i, q := range req.Questions {
		if q.CorrectOption >= len(q.Options) {
			return utils.ValidationError(fmt.Sprintf("Question %d: correct option out of range", i+1))
		}
		questions = append(questions, models.Question{
			QuestionText:  q.QuestionText,
			Options:       q.Options,
			CorrectOption: q.CorrectOption,
		})
	}
	quiz := &models.Quiz{
		Title:           req.Title,
		Questions:       questions,
		DurationSeconds: req.DurationSeconds,
	}
	if err := quizzes.Insert(r.Context(), quiz); err != nil {
		return utils.Internal(err)
	}
	utils.WriteJSON(w, http.StatusOK, MessageResponse{Message: utils.MSG_QUIZ_CREATED})
	return nil
}
