package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/tawdev/mahtaaj-sub005/internal/auth"
)

type sessionKey struct{}

type Session struct {
	UserID string
	Role   string
}

func WithSession(ctx context.Context, userID, role string) context.Context {
	return context.WithValue(ctx, sessionKey{}, Session{UserID: userID, Role: role})
}

func SessionFromContext(ctx context.Context) (Session, bool) {
	if v := ctx.Value(sessionKey{}); v != nil {
		if s, ok := v.(Session); ok {
			return s, true
		}
	}
	return Session{}, false
}

// OptionalSession stamps the current session into the request context when a
// valid token is present. Anonymous requests pass through untouched; bookings
// never require a session.
func OptionalSession(manager *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if manager == nil {
				next.ServeHTTP(w, r)
				return
			}

			token := ""
			if cookie, err := r.Cookie(AccessCookieName); err == nil {
				token = cookie.Value
			}
			if token == "" {
				header := r.Header.Get("Authorization")
				if strings.HasPrefix(header, "Bearer ") {
					token = strings.TrimPrefix(header, "Bearer ")
				}
			}
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := manager.Parse(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), claims.UserID, claims.Role)))
		})
	}
}
