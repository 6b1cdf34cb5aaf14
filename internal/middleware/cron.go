package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
)

// RequireCronSecret guards endpoints meant to be hit only by the external
// scheduler. With no secret configured the endpoint is closed, not open.
func RequireCronSecret(secret string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			want := "Bearer " + secret

			if secret == "" || subtle.ConstantTimeCompare([]byte(auth), []byte(want)) != 1 {
				slog.Warn("cron auth rejected", "path", r.URL.Path, "remote_addr", r.RemoteAddr)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next(w, r)
		}
	}
}
