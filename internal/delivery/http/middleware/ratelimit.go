package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	h "artwalls/internal/delivery/http/helpers"
	"artwalls/internal/ratelimit"
)

// RateLimit returns a wrapper that applies a fixed-window rate limit to the
// wrapped handler. Requests are keyed by the authenticated user ID when
// present, otherwise by client IP. Rejected requests get a 429 with retry
// metadata in the error details.
func RateLimit(limiter *ratelimit.Limiter, limit int, window time.Duration) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			key, _ := UserIDFromContext(r.Context())
			if key == "" {
				key = clientIP(r)
			}

			res := limiter.Check(key, limit, window)
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			if !res.OK {
				retryAfter := int(time.Until(res.ResetAt).Seconds()) + 1
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				h.WriteJSONErrorDetails(w, http.StatusTooManyRequests, h.ErrCodeTooManyRequests,
					"rate limit exceeded", map[string]any{
						"retry_after_seconds": retryAfter,
						"reset_at":            res.ResetAt.UTC().Format(time.RFC3339),
					})
				return
			}
			next(w, r)
		}
	}
}

// clientIP prefers the first X-Forwarded-For hop, falling back to RemoteAddr.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
