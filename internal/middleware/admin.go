package middleware

import (
	"crypto/subtle"
	"net/http"

	"portfolio-backend/internal/transport"
)

// AdminAuth guards routes with the X-Admin-Key header. An empty key leaves
// the routes open.
func AdminAuth(adminKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if adminKey == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("X-Admin-Key")
			if subtle.ConstantTimeCompare([]byte(got), []byte(adminKey)) != 1 {
				transport.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdminKey is AdminAuth for routes that must never be open, such as
// reading stored contact messages.
func RequireAdminKey(adminKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if adminKey == "" {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
			})
		}
		return AdminAuth(adminKey)(next)
	}
}
