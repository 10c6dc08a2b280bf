package middleware

import (
	"context"
	"net/http"

	"github.com/rgalvan/jobtracker-api/internal/api/respond"
	"github.com/rgalvan/jobtracker-api/internal/domain"
	"github.com/rgalvan/jobtracker-api/internal/service"
)

type contextKey string

const (
	currentUserKey  contextKey = "currentUser"
	sessionTokenKey contextKey = "sessionToken"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "jobtracker_session"

// Auth resolves the caller's identity from the session cookie on every
// request. There is no caching between requests, so a logged-out
// session fails immediately.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				respond.Error(w, http.StatusUnauthorized, "not authenticated")
				return
			}

			user, err := authService.CurrentUser(r.Context(), cookie.Value)
			if err != nil {
				respond.DomainError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), currentUserKey, user)
			ctx = context.WithValue(ctx, sessionTokenKey, cookie.Value)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetCurrentUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(currentUserKey).(*domain.User)
	return user, ok
}

func GetSessionToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(sessionTokenKey).(string)
	return token, ok
}
