package server

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// loggingMiddleware shims in a handler middleware that logs requests.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().Str("method", r.Method).Str("uri", r.RequestURI).Int64("length", r.ContentLength).Dur("took", time.Since(start)).Msg("request")
	})
}
