package metrics

import (
	"net/http"
	"strings"
	"time"
)

// unmatchedRoute labels requests no route accepted, so unknown paths
// cannot grow the label set.
const unmatchedRoute = "unmatched"

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Router resolves the route pattern a request matches. *http.ServeMux
// implements it.
type Router interface {
	Handler(r *http.Request) (h http.Handler, pattern string)
}

// HTTPMiddleware returns middleware that records HTTP metrics labeled by
// route pattern, such as /api/v1/jobs/{id}. When routes is nil the pattern
// the ServeMux records on the request is used instead.
func HTTPMiddleware(reg *Registry, routes Router) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reg.InFlightInc()
			defer reg.InFlightDec()

			var pattern string
			if routes != nil {
				_, pattern = routes.Handler(r)
			}

			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)

			if routes == nil {
				pattern = r.Pattern
			}
			reg.RecordRequest(r.Method, routeLabel(pattern), rw.statusCode, time.Since(start).Seconds())
		})
	}
}

// routeLabel drops the method of a "GET /path" pattern, which the method
// label already carries.
func routeLabel(pattern string) string {
	if pattern == "" {
		return unmatchedRoute
	}
	if _, path, ok := strings.Cut(pattern, " "); ok {
		return path
	}
	return pattern
}
