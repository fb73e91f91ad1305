package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Defaults for the credential endpoints (register/authenticate).
const (
	sensitiveRate  = rate.Limit(5)
	sensitiveBurst = 10

	cleanupEvery = 5 * time.Minute
	staleAfter   = 10 * time.Minute
)

type hostLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per-client token-bucket rate limiter with automatic
// stale-entry cleanup. Entries are keyed by client host, so connections
// from the same address share one bucket regardless of source port.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*hostLimiter
	r        rate.Limit
	burst    int
}

// NewRateLimiter creates a per-host limiter: r requests/second, burst up to burst requests.
func NewRateLimiter(r rate.Limit, burst int) *RateLimiter {
	rl := &RateLimiter{
		limiters: make(map[string]*hostLimiter),
		r:        r,
		burst:    burst,
	}
	go rl.cleanup()
	return rl
}

// NewSensitiveLimiter returns a limiter with the defaults applied to
// credential endpoints.
func NewSensitiveLimiter() *RateLimiter {
	return NewRateLimiter(sensitiveRate, sensitiveBurst)
}

func (rl *RateLimiter) get(host string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if v, ok := rl.limiters[host]; ok {
		v.lastSeen = time.Now()
		return v.limiter
	}
	l := rate.NewLimiter(rl.r, rl.burst)
	rl.limiters[host] = &hostLimiter{limiter: l, lastSeen: time.Now()}
	return l
}

func (rl *RateLimiter) cleanup() {
	for {
		time.Sleep(cleanupEvery)
		rl.mu.Lock()
		for host, v := range rl.limiters {
			if time.Since(v.lastSeen) > staleAfter {
				delete(rl.limiters, host)
			}
		}
		rl.mu.Unlock()
	}
}

// clientHost strips the port from a RemoteAddr. RealIP runs earlier in the
// chain, so behind a proxy this is already the forwarded client address.
func clientHost(remoteAddr string) string {
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host
	}
	return remoteAddr
}

// Limit is the middleware handler that enforces the rate limit per client host.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.get(clientHost(r.RemoteAddr)).Allow() {
			http.Error(w, `{"error":"too many requests"}`, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
