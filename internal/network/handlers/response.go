package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/Mikheil23/FinalProject/internal/logger"
	"github.com/Mikheil23/FinalProject/internal/services"
	"github.com/goccy/go-json"
)

type messageResponse struct {
	Message string `json:"message"`
}

type validationResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.FromContext(context.Background()).Errorw("Failed to encode response", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

// StatusOf - код ответа по виду ошибки операции
func StatusOf(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidOperation), errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError - ответ по ошибке операции; тексты внутренних ошибок наружу не уходят
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	status := StatusOf(err)
	switch status {
	case http.StatusBadRequest:
		details := []string{err.Error()}
		var opErr *services.OperationError
		if errors.As(err, &opErr) && len(opErr.Details) > 0 {
			details = opErr.Details
		}
		log.Warnw("Validation failed", "errors", details)
		writeJSON(w, status, validationResponse{Message: "Validation failed.", Errors: details})
	case http.StatusInternalServerError:
		log.Errorw("Operation failed", "error", err)
		writeMessage(w, status, "An unexpected error occurred.")
	default:
		log.Warnw("Operation rejected", "status", status, "reason", err.Error())
		writeMessage(w, status, err.Error())
	}
}

// decodeBody - разбор тела запроса, при ошибке ответ 400 уже отправлен
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.FromContext(r.Context()).Warnw("Failed to decode request", "error", err)
		writeMessage(w, http.StatusBadRequest, "Invalid request data.")
		return false
	}
	return true
}
