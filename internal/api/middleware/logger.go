package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Logger writes one line per request: request ID, method, path, response
// status and elapsed time. The request ID comes from the RequestID
// middleware mounted ahead of this one.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		// Strip CR/LF from request-supplied values so a crafted path cannot
		// forge extra log lines.
		clean := strings.NewReplacer("\n", "", "\r", "").Replace
		log.Printf("[%s] %s %s %d %s",
			chimiddleware.GetReqID(r.Context()),
			clean(r.Method),
			clean(r.URL.Path),
			rec.status,
			time.Since(start),
		)
	})
}

// statusRecorder captures the status code written by the wrapped handler.
// Handlers that never call WriteHeader implicitly send 200.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
