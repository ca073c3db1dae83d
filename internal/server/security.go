package server

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// RequestSizeLimitMiddleware caps request bodies at maxBytes
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimiter counts requests per client IP over a fixed window
type RateLimiter struct {
	mu               sync.Mutex
	limit            int
	window           time.Duration
	requestCountByIP map[string]int
	lastResetTime    time.Time
}

// NewRateLimiter allows limit requests per IP in each window
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:            limit,
		window:           window,
		requestCountByIP: make(map[string]int),
		lastResetTime:    time.Now(),
	}
}

// RecordRequest records a request and returns false if the rate limit is exceeded
func (s *RateLimiter) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if time.Since(s.lastResetTime) > s.window {
		s.requestCountByIP = make(map[string]int)
		s.lastResetTime = time.Now()
	}
	s.requestCountByIP[ip]++

	if s.requestCountByIP[ip] > s.limit {
		if s.requestCountByIP[ip]%100 == 0 { // Log every 100 requests to avoid log spam
			slog.Warn(SecurityAlertHighRate,
				"ip", ip,
				"count_in_window", s.requestCountByIP[ip])
		}
		return false
	}
	return true
}

// RateLimitMiddleware rejects clients over the limiter's budget with 429
func RateLimitMiddleware(trustedProxies []string, limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.RecordRequest(extractIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// It only trusts X-Forwarded-For if the request comes from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	isTrusted := false
	for _, proxy := range trustedProxies {
		if proxy == remoteIP {
			isTrusted = true
			break
		}
	}

	if isTrusted {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			// Rightmost entry is the hop that reached the trusted proxy
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
