package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/checkplatform/checkdesk/pkg/utils"
)

type ContextKey string

const (
	// UserIDKey carries the authenticated client's id.
	UserIDKey ContextKey = "userID"
	// AdminIDKey carries the authenticated admin's id.
	AdminIDKey ContextKey = "adminID"
)

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}

// ClientMiddleware admits requests carrying a valid client token.
func (s *JWTService) ClientMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := s.ValidateClientToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CombinedMiddleware admits either role. Routes shared between admins and
// clients (comments) get the actor id under the key matching the token role.
func (s *JWTService) CombinedMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if claims, err := s.ValidateAdminToken(token); err == nil {
			ctx := context.WithValue(r.Context(), AdminIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}
		if claims, err := s.ValidateClientToken(token); err == nil {
			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
	})
}

// AdminMiddleware admits requests carrying a valid admin token. Super-admin
// checks stay inside services: the token only proves the admin role.
func (s *JWTService) AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := s.ValidateAdminToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), AdminIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
