package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/programarreza/TaskNestle-Server/models"
	"github.com/programarreza/TaskNestle-Server/store"
	"github.com/programarreza/TaskNestle-Server/utils"
)

type contextKey string

const emailKey contextKey = "userEmail"

// EmailFromContext returns the email claim Auth stored for this request.
func EmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(emailKey).(string)
	return email
}

// Auth verifies the bearer token and stores its email claim in the
// request context. Missing, malformed or expired tokens short-circuit
// with 401 before the handler runs.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// WebSocket upgrades authenticate via query params in the handler
		if r.Header.Get("Upgrade") == "websocket" {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Missing or invalid Authorization header")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateJWT(tokenString)
		if err != nil {
			log.Printf("Auth: JWT validation failed: %v", err)
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), emailKey, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin runs after Auth and checks the stored role of the
// authenticated email. The role lives in the user document, not in the
// token, so a payment-driven upgrade takes effect without re-issuing.
func RequireAdmin(s store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := EmailFromContext(r.Context())
			if email == "" {
				utils.RespondWithError(w, http.StatusUnauthorized, "Missing or invalid Authorization header")
				return
			}

			user, err := s.FindUserByEmail(r.Context(), email)
			if err != nil {
				log.Printf("RequireAdmin: user lookup failed for %s: %v", email, err)
				utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
				return
			}
			if user == nil || user.Role != models.RoleAdmin {
				utils.RespondWithError(w, http.StatusForbidden, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
