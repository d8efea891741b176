package handlers

import (
	"net/http"

	"github.com/Mikheil23/FinalProject/internal/helpers"
	"github.com/Mikheil23/FinalProject/internal/logger"
	"github.com/Mikheil23/FinalProject/internal/models"
	"github.com/Mikheil23/FinalProject/internal/services"
	"github.com/go-chi/chi/v5"
)

// caller - личность из токена, при ошибке ответ 401 уже отправлен
func caller(w http.ResponseWriter, r *http.Request) (models.Caller, bool) {
	c, err := helpers.GetCaller(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Warnw("Failed to get caller", "error", err)
		writeMessage(w, http.StatusUnauthorized, "Invalid token.")
		return models.Caller{}, false
	}
	return c, true
}

// pathID - числовой параметр пути, при ошибке ответ 400 уже отправлен
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := helpers.ParseID(chi.URLParam(r, name))
	if err != nil {
		logger.FromContext(r.Context()).Warnw("Invalid path parameter", "name", name, "error", err)
		writeMessage(w, http.StatusBadRequest, "Invalid "+name+".")
		return 0, false
	}
	return id, true
}

// AddLoanRequestHandler — новая заявка на кредит; владелец берётся из токена
func AddLoanRequestHandler(s services.LoansService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := caller(w, r)
		if !ok {
			return
		}
		userID, err := helpers.ParseID(c.ID)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "Invalid token.")
			return
		}
		var req models.LoanRequest
		if !decodeBody(w, r, &req) {
			return
		}
		resp, err := s.AddLoanRequest(r.Context(), req, userID, c)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	})
}

// ViewUserCabinetHandler — профиль владельца
func ViewUserCabinetHandler(s services.LoansService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := caller(w, r)
		if !ok {
			return
		}
		userID, ok := pathID(w, r, "userId")
		if !ok {
			return
		}
		resp, err := s.ViewUserCabinet(r.Context(), userID, c)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	})
}

// ViewLoansHandler — история заявок владельца
func ViewLoansHandler(s services.LoansService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := caller(w, r)
		if !ok {
			return
		}
		userID, ok := pathID(w, r, "userId")
		if !ok {
			return
		}
		resp, err := s.ViewLoans(r.Context(), userID, c)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	})
}

// UpdateLoanHandler — изменение условий заявки владельцем
func UpdateLoanHandler(s services.LoansService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := caller(w, r)
		if !ok {
			return
		}
		userID, ok := pathID(w, r, "userId")
		if !ok {
			return
		}
		loanID, ok := pathID(w, r, "loanId")
		if !ok {
			return
		}
		var req models.LoanRequest
		if !decodeBody(w, r, &req) {
			return
		}
		resp, err := s.UpdateLoan(r.Context(), loanID, req, userID, c)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	})
}

// DeleteLoanHandler — отзыв заявки владельцем
func DeleteLoanHandler(s services.LoansService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := caller(w, r)
		if !ok {
			return
		}
		userID, ok := pathID(w, r, "userId")
		if !ok {
			return
		}
		loanID, ok := pathID(w, r, "loanId")
		if !ok {
			return
		}
		if _, err := s.DeleteLoan(r.Context(), userID, loanID, c); err != nil {
			writeError(w, r, err)
			return
		}
		writeMessage(w, http.StatusOK, "Loan has been successfully deleted.")
	})
}
