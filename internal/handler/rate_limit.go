package handler

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimit throttles a route group with a shared token bucket, used on the
// credential endpoints to slow down brute forcing.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "too many requests"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
