package middleware

import (
	"net/http"

	"github.com/tawdev/mahtaaj-sub005/internal/auth"
	"github.com/tawdev/mahtaaj-sub005/internal/transport"
)

const AccessCookieName = "mahtaaj_access"

// AdminAuth lets requests through with a valid X-Admin-Key header or an
// access cookie carrying an admin/employee role.
func AdminAuth(adminKey string, manager *auth.Manager, roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}
	if len(allowed) == 0 {
		allowed["admin"] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminKey == "" && manager == nil {
				transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
				return
			}

			if adminKey != "" && r.Header.Get("X-Admin-Key") == adminKey {
				next.ServeHTTP(w, r)
				return
			}

			if manager != nil {
				cookie, err := r.Cookie(AccessCookieName)
				if err == nil && cookie.Value != "" {
					claims, err := manager.Parse(cookie.Value)
					if err == nil && allowed[claims.Role] {
						next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), claims.UserID, claims.Role)))
						return
					}
				}
			}

			transport.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		})
	}
}
