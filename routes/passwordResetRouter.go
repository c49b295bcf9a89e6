package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/quizplatform/apiv1/middlewares"
	"github.com/quizplatform/apiv1/utils"
)

func PasswordResetRouter(s *mux.Router) {
	s.HandleFunc("/request", middlewares.RateLimit(handle(RequestReset))).Methods("POST")
	s.HandleFunc("/verify", handle(VerifyReset)).Methods("POST")
	s.HandleFunc("/reset", handle(ResetPassword)).Methods("POST")
}

// RequestReset issues a reset code for a known email. The code travels only
// through the notification sender; the response never contains it.
func RequestReset(w http.ResponseWriter, r *http.Request) error {
	req, err := DecodeValidBody[ResetRequestBody](r)
	if err != nil {
		return utils.ValidationError(utils.MSG_EMAIL_REQUIRED)
	}
	ctx := r.Context()
	user, err := users.FindByEmail(ctx, req.Email)
	if err != nil {
		return utils.Internal(err)
	}
	if user == nil {
		return utils.NotFound(utils.MSG_NO_ACCOUNT_FOR_EMAIL)
	}
	if _, err := codes.Issue(ctx, req.Email); err != nil {
		return utils.Internal(err)
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{
		"message": utils.MSG_OTP_SENT,
		"email":   req.Email,
	})
	return nil
}

// VerifyReset is a non-mutating check; a wrong or expired code is an
// ordinary negative answer, not an error.
func VerifyReset(w http.ResponseWriter, r *http.Request) error {
	req, err := DecodeValidBody[ResetVerifyBody](r)
	if err != nil {
		utils.WriteJSON(w, http.StatusOK, map[string]string{
			"message":  utils.MSG_OTP_INVALID,
			"verified": "false",
		})
		return nil
	}
	valid, err := codes.Verify(r.Context(), req.Email, req.Otp)
	if err != nil {
		return utils.Internal(err)
	}
	if valid {
		utils.WriteJSON(w, http.StatusOK, map[string]string{
			"message":  utils.MSG_OTP_VERIFIED,
			"verified": "true",
		})
	} else {
		utils.WriteJSON(w, http.StatusOK, map[string]string{
			"message":  utils.MSG_OTP_INVALID,
			"verified": "false",
		})
	}
	return nil
}

// ResetPassword re-verifies the (email, otp) pair, replaces the credential,
// and only then consumes the code.
func ResetPassword(w http.ResponseWriter, r *http.Request) error {
	req, err := DecodeValidBody[ResetPasswordBody](r)
	if err != nil {
		return utils.ValidationError(utils.MSG_INVALID_BODY)
	}
	ctx := r.Context()
	valid, err := codes.Verify(ctx, req.Email, req.Otp)
	if err != nil {
		return utils.Internal(err)
	}
	if !valid {
		return utils.ValidationError(utils.MSG_OTP_INVALID)
	}
	user, err := users.FindByEmail(ctx, req.Email)
	if err != nil {
		return utils.Internal(err)
	}
	if user == nil {
		return utils.NotFound(utils.MSG_USER_NOT_FOUND)
	}
	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return utils.Internal(err)
	}
	if err := users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return utils.Internal(err)
	}
	if err := codes.Consume(ctx, req.Email, req.Otp); err != nil {
		return utils.Internal(err)
	}
	utils.WriteJSON(w, http.StatusOK, MessageResponse{Message: utils.MSG_PASSWORD_RESET})
	return nil
}
