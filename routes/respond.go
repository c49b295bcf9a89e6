package routes

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/quizplatform/apiv1/utils"
)

type MessageResponse struct {
	Message string `json:"message"`
}

// handle is the single error-translation boundary: handlers return typed
// errors and this wrapper maps them to transport status codes, so no
// handler writes its own failure response.
func handle(h func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}
		status := utils.StatusFor(err)
		if status == http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Error(err))
			utils.WriteJSON(w, status, MessageResponse{Message: "An error occurred: " + err.Error()})
			return
		}
		utils.WriteJSON(w, status, MessageResponse{Message: err.Error()})
	}
}

// pageParams reads the shared listing query parameters: zero-based page,
// page size, and a sort key defaulted per endpoint.
func pageParams(r *http.Request, defaultSort string) (page, size int, sortBy string) {
	page = 0
	size = 10
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v >= 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil && v > 0 {
		size = v
	}
	sortBy = r.URL.Query().Get("sortBy")
	if sortBy == "" {
		sortBy = defaultSort
	}
	return page, size, sortBy
}
