package handlers

import (
	"net/http"
	"strconv"

	"github.com/Mikheil23/FinalProject/internal/models"
	"github.com/Mikheil23/FinalProject/internal/services"
)

// ViewUsersHandler — все пользователи
func ViewUsersHandler(s services.AccountantService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		users, err := s.ViewAllUsers(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, users)
	})
}

// ViewLoanRequestsHandler — все заявки
func ViewLoanRequestsHandler(s services.AccountantService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loans, err := s.GetAllLoanRequests(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, loans)
	})
}

// BlockOrUnblockUserHandler — ?isBlocked=true|false
func BlockOrUnblockUserHandler(s services.AccountantService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(w, r, "userId")
		if !ok {
			return
		}
		isBlocked, err := strconv.ParseBool(r.URL.Query().Get("isBlocked"))
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid isBlocked.")
			return
		}
		if _, err = s.BlockOrUnblockUser(r.Context(), userID, isBlocked); err != nil {
			writeError(w, r, err)
			return
		}
		action := "unblocked"
		if isBlocked {
			action = "blocked"
		}
		writeMessage(w, http.StatusOK, "User successfully "+action+".")
	})
}

// ChangeLoanStatusHandler — ?newStatus= имя статуса или его номер
func ChangeLoanStatusHandler(s services.AccountantService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(w, r, "userId")
		if !ok {
			return
		}
		loanID, ok := pathID(w, r, "loanId")
		if !ok {
			return
		}
		// неизвестный статус отклоняется сервисом как ошибка валидации
		status := models.ParseLoanStatus(r.URL.Query().Get("newStatus"))
		if _, err := s.ChangeLoanStatus(r.Context(), userID, loanID, status); err != nil {
			writeError(w, r, err)
			return
		}
		writeMessage(w, http.StatusOK, "Loan status successfully changed to "+status.String()+".")
	})
}

// AccountantDeleteLoanHandler — удаление любой заявки
func AccountantDeleteLoanHandler(s services.AccountantService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loanID, ok := pathID(w, r, "loanId")
		if !ok {
			return
		}
		if _, err := s.DeleteLoan(r.Context(), loanID); err != nil {
			writeError(w, r, err)
			return
		}
		writeMessage(w, http.StatusOK, "Loan successfully deleted.")
	})
}
