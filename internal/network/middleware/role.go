package middleware

import (
	"net/http"

	"github.com/Mikheil23/FinalProject/internal/helpers"
	"github.com/Mikheil23/FinalProject/internal/logger"
	"github.com/Mikheil23/FinalProject/internal/models"
	"github.com/goccy/go-json"
)

// RequireRole - пропускает только вызывающих с одной из ролей, иначе 403.
// Должен стоять после jwtauth.Verifier/Authenticator.
func RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	allowed := make(map[models.Role]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, err := helpers.GetCaller(r.Context())
			if err != nil || !allowed[caller.Role] {
				logger.FromContext(r.Context()).Warnw("Forbidden role", "caller", caller.ID, "role", caller.Role.String())
				writeJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
