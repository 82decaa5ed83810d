package httppanel

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// RateLimiter caps button presses per client IP in fixed windows.
type RateLimiter struct {
	mu        sync.Mutex
	windows   map[string]*pressWindow
	limit     int
	period    time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type pressWindow struct {
	start   time.Time
	presses int
}

func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	return &RateLimiter{
		windows: make(map[string]*pressWindow),
		limit:   limit,
		period:  period,
		now:     time.Now,
	}
}

// Allow reports whether another press from ip fits in its current window
// and counts it if so.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	w, ok := rl.windows[ip]
	if !ok || now.Sub(w.start) > rl.period {
		w = &pressWindow{start: now}
		rl.windows[ip] = w
	}

	if w.presses >= rl.limit {
		return false
	}
	w.presses++
	return true
}

// tracked returns the number of clients with a live window.
func (rl *RateLimiter) tracked() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.windows)
}

// sweep drops expired windows, at most once per period.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) <= rl.period {
		return
	}
	for ip, w := range rl.windows {
		if now.Sub(w.start) > rl.period {
			delete(rl.windows, ip)
		}
	}
	rl.lastSweep = now
}

func (rl *RateLimiter) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(clientIP(r)) {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}

// clientIP returns the originating address of r without its port. Behind a
// proxy only the first X-Forwarded-For hop is used.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
