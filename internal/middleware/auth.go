package middleware

import (
	"context"
	"errors"
	"net/http"

	model "github.com/MassBabyGeek/FocusPlay-backend/internal/models"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/store"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/utils"
	"github.com/gorilla/mux"
)

// Context keys
type contextKey string

const (
	userContextKey  = contextKey("user")
	tokenContextKey = contextKey("token")
)

// Auth valide le token Authorization et injecte l'utilisateur dans le
// contexte. Le store est passé explicitement, pas de connexion globale.
func Auth(st store.Store) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("Authorization")
			if token == "" {
				utils.Error(w, http.StatusUnauthorized, "missing authorization token")
				return
			}

			user, err := st.UserByToken(r.Context(), token)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					utils.Error(w, http.StatusUnauthorized, "invalid or expired token")
					return
				}
				utils.Error(w, http.StatusInternalServerError, "could not validate token", err)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, *user)
			ctx = context.WithValue(ctx, tokenContextKey, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin refuse les utilisateurs non-admin ; à chaîner après Auth
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := GetUserFromContext(r)
		if err != nil || !user.IsAdmin {
			utils.Error(w, http.StatusForbidden, "admin privileges required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserFromContext récupère l'utilisateur depuis le contexte de la requête
func GetUserFromContext(r *http.Request) (model.User, error) {
	user, ok := r.Context().Value(userContextKey).(model.User)
	if !ok {
		return model.User{}, errors.New("user not found in context")
	}
	return user, nil
}

// GetTokenFromContext récupère le token depuis le contexte de la requête
func GetTokenFromContext(r *http.Request) (string, error) {
	token, ok := r.Context().Value(tokenContextKey).(string)
	if !ok || token == "" {
		return "", errors.New("token not found in context")
	}
	return token, nil
}
