// Package requesttime pins one "now" per HTTP request so every row a request
// writes carries the same instant.
package requesttime

import (
	"net/http"
	"time"

	"casebook/pkg/requestcontext"
)

// Middleware stores clock() in the request context, in UTC and truncated to
// microseconds so memory and Postgres stores return identical timestamps.
// A nil clock uses time.Now.
func Middleware(clock func() time.Time) func(http.Handler) http.Handler {
	if clock == nil {
		clock = time.Now
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := clock().UTC().Truncate(time.Microsecond)
			next.ServeHTTP(w, r.WithContext(requestcontext.WithTime(r.Context(), now)))
		})
	}
}
