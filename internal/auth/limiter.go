package auth

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// LimiterPool hands out one token bucket per client key (the remote IP).
type LimiterPool struct {
	mu    sync.Mutex
	m     map[string]*rate.Limiter
	rps   rate.Limit
	burst int
}

// NewLimiterPool creates a pool with the given refill rate and burst size.
func NewLimiterPool(rps float64, burst int) *LimiterPool {
	if rps <= 0 {
		rps = 5
	}
	if burst <= 0 {
		burst = 10
	}
	return &LimiterPool{
		m:     make(map[string]*rate.Limiter),
		rps:   rate.Limit(rps),
		burst: burst,
	}
}

func (p *LimiterPool) get(key string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()
	if l, ok := p.m[key]; ok {
		return l
	}
	l := rate.NewLimiter(p.rps, p.burst)
	p.m[key] = l
	return l
}

// Allow reports whether a request from key may proceed now.
func (p *LimiterPool) Allow(key string) bool {
	return p.get(key).Allow()
}

// RateLimit returns a middleware rejecting over-limit clients with 429.
// Keyed by RemoteAddr as normalized by chi's RealIP middleware.
func RateLimit(pool *LimiterPool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !pool.Allow(r.RemoteAddr) {
				http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
