package middleware

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// LogRequest traces every request and logs its outcome once served. Server
// errors are logged at warn level.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			begin := time.Now()
			entry := log.WithFields(log.Fields{
				"method":     r.Method,
				"path":       r.URL.Path,
				"user_agent": r.Header.Get("User-Agent"),
			})
			entry.Trace(" ====> request")

			resp := &responseWriter{w, http.StatusOK}
			next.ServeHTTP(resp, r)

			entry = entry.WithFields(log.Fields{
				"route":       routeName(r),
				"status":      resp.statusCode,
				"duration_ms": time.Since(begin).Milliseconds(),
			})
			if resp.statusCode >= http.StatusInternalServerError {
				entry.Warn(" <==== failed")
				return
			}
			entry.Debug(" <==== done")
		})
	}
}
