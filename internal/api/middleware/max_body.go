package middleware

import (
	"net/http"

	"github.com/folio-cms/folio/internal/api"
)

// MaxBodyBytes caps request body size. The only bodies this API accepts
// are small JSON forms, so anything over the cap is rejected up front
// when Content-Length says so, and truncated by MaxBytesReader when it
// does not.
func MaxBodyBytes(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limit <= 0 || r.Body == nil {
				next.ServeHTTP(w, r)
				return
			}

			if r.ContentLength != -1 && r.ContentLength > limit {
				api.Error(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
