package middlewares

import (
	"net/http"

	"github.com/didip/tollbooth/v6"

	"github.com/quizplatform/apiv1/utils"
)

// RateLimit throttles a route per client IP. Used on the password-reset
// request endpoint, where unbounded code issuance would be abusable.
func RateLimit(next http.HandlerFunc) http.HandlerFunc {
	lmt := tollbooth.NewLimiter(1, nil)
	lmt.SetBurst(5)
	return func(w http.ResponseWriter, r *http.Request) {
		if httpError := tollbooth.LimitByRequest(lmt, w, r); httpError != nil {
			utils.WriteJSON(w, httpError.StatusCode, map[string]string{"message": utils.MSG_TOO_MANY_REQUESTS})
			return
		}
		next(w, r)
	}
}
