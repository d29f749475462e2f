// internal/api/middleware/ratelimit.go
package middleware

import (
	"net/http"

	"github.com/newthinker/tacall/internal/api/response"
	"github.com/newthinker/tacall/internal/core"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimit returns middleware that admits rps requests per second with
// bursts of up to burst. A non-positive rps disables limiting.
func RateLimit(rps float64, burst int, logger *zap.Logger) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logger.Warn("rate limit exceeded",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
				)
				w.Header().Set("Retry-After", "1")
				response.Error(w, http.StatusTooManyRequests, core.ErrRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
