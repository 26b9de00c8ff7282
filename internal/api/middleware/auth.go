package middleware

import (
	"context"
	"errors"
	"net/http"

	"portfolio_api/internal/common"
	"portfolio_api/internal/domain/model"
	"portfolio_api/internal/domain/repository"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const UserCtxKey contextKey = "authUser"

// SessionCookieName is the cookie carrying the session token. The gate
// prefers it over the Authorization header.
const SessionCookieName = "token"

// TokenFromCookie extracts the session token from the request cookie.
// Passed to jwtauth.Verify ahead of the Bearer header extractor.
func TokenFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Authenticator resolves the verified token in the request context into a
// loaded user and attaches it for downstream handlers. It must run after
// jwtauth.Verify and before AdminOnly. Authentication has no side effects:
// nothing is persisted, only the request context changes.
func Authenticator(userRepo repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if err != nil {
				switch {
				case errors.Is(err, jwtauth.ErrNoTokenFound):
					common.RespondWithError(w, http.StatusUnauthorized, "Access denied. No token provided.")
				case errors.Is(err, jwtauth.ErrExpired):
					common.RespondWithError(w, http.StatusUnauthorized, "Token expired.")
				default:
					common.RespondWithError(w, http.StatusUnauthorized, "Invalid token.")
				}
				return
			}

			if token == nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Invalid token.")
				return
			}

			userID, ok := claims["user_id"].(string)
			if !ok || userID == "" {
				common.RespondWithError(w, http.StatusUnauthorized, "Invalid token.")
				return
			}

			// A valid token can outlive its account; re-check the store.
			// The projection excludes the password hash.
			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, common.ErrNotFound) {
					common.RespondWithError(w, http.StatusUnauthorized, "Invalid token. User not found.")
					return
				}
				common.RespondWithError(w, http.StatusInternalServerError, "Authentication error.")
				return
			}

			ctx := context.WithValue(r.Context(), UserCtxKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly permits only authenticated admins. A missing identity is treated
// as forbidden rather than panicking on a misordered middleware chain.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok || user.Role != model.RoleAdmin {
			common.RespondWithError(w, http.StatusForbidden, "Access denied. Admin privileges required.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserFromContext returns the authenticated user attached by Authenticator.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(*model.User)
	return user, ok
}
