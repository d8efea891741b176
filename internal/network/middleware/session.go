package middleware

import (
	"net/http"

	"github.com/Mikheil23/FinalProject/internal/helpers"
	"github.com/Mikheil23/FinalProject/internal/logger"
	"github.com/Mikheil23/FinalProject/internal/storage"
)

// RequireSession - токен действителен, пока его сессия не отозвана через logout.
// При sessions == nil проверка не выполняется.
func RequireSession(sessions storage.SessionsStorage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if sessions == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromContext(r.Context())
			ok, err := sessions.HasSession(r.Context(), helpers.GetTokenID(r.Context()))
			if err != nil {
				log.Errorw("Failed to check session", "error", err)
				writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "An unexpected error occurred."})
				return
			}
			if !ok {
				log.Warn("Session revoked or expired")
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "session expired"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
