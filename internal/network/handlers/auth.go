package handlers

import (
	"errors"
	"net/http"

	"github.com/Mikheil23/FinalProject/internal/helpers"
	"github.com/Mikheil23/FinalProject/internal/logger"
	"github.com/Mikheil23/FinalProject/internal/models"
	"github.com/Mikheil23/FinalProject/internal/services"
)

// RegisterUserHandler — регистрация нового пользователя
func RegisterUserHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if !decodeBody(w, r, &req) {
			return
		}
		resp, err := i.RegisterUser(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		logger.FromContext(r.Context()).Infow("User registered", "user_id", resp.UserID)
		writeJSON(w, http.StatusOK, resp)
	})
}

// RegisterAccountantHandler — регистрация бухгалтера
func RegisterAccountantHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.AccountantRegisterRequest
		if !decodeBody(w, r, &req) {
			return
		}
		resp, err := i.RegisterAccountant(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		logger.FromContext(r.Context()).Infow("Accountant registered", "accountant_id", resp.AccountantID)
		writeJSON(w, http.StatusOK, resp)
	})
}

// LoginHandler — аутентификация, в ответе JWT токен
func LoginHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}
		resp, err := i.Login(r.Context(), req)
		if err != nil {
			// неверные учётные данные - это 401, а не отказ в доступе
			if errors.Is(err, services.ErrUnauthorized) {
				logger.FromContext(r.Context()).Warnw("Authentication failed", "username", req.Username)
				writeMessage(w, http.StatusUnauthorized, err.Error())
				return
			}
			writeError(w, r, err)
			return
		}
		w.Header().Set("Authorization", "Bearer "+resp.Token)
		writeJSON(w, http.StatusOK, resp)
	})
}

// LogoutHandler — отзыв сессии текущего токена
func LogoutHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := i.Logout(r.Context(), helpers.GetTokenID(r.Context())); err != nil {
			writeError(w, r, err)
			return
		}
		writeMessage(w, http.StatusOK, "Logged out.")
	})
}
