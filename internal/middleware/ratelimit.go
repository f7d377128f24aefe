package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spatialrsp/rsp-backend-go/pkg/response"
)

// RateLimiter caps requests per client over a sliding window. Scan runs are
// CPU-bound, so the cap guards the worker pool rather than the database.
type RateLimiter struct {
	mu        sync.Mutex
	clients   map[string][]time.Time
	limit     int
	window    time.Duration
	lastSweep time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per client
// within each sliding window.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		clients:   make(map[string][]time.Time),
		limit:     limit,
		window:    window,
		lastSweep: time.Now(),
	}
}

// Allow records a request for the client and reports whether it stays
// within the limit.
func (rl *RateLimiter) Allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastSweep) >= rl.window {
		rl.sweep(now)
	}

	recent := pruneTimes(rl.clients[client], now, rl.window)
	if len(recent) >= rl.limit {
		rl.clients[client] = recent
		return false
	}
	rl.clients[client] = append(recent, now)
	return true
}

// sweep drops clients whose requests have all aged out. It runs inline at
// most once per window, so no cleanup goroutine is needed.
func (rl *RateLimiter) sweep(now time.Time) {
	for client, times := range rl.clients {
		if len(pruneTimes(times, now, rl.window)) == 0 {
			delete(rl.clients, client)
		}
	}
	rl.lastSweep = now
}

// pruneTimes keeps only the timestamps still inside the window, reusing the
// backing array.
func pruneTimes(times []time.Time, now time.Time, window time.Duration) []time.Time {
	kept := times[:0]
	for _, t := range times {
		if now.Sub(t) < window {
			kept = append(kept, t)
		}
	}
	return kept
}

// RateLimit middleware limits requests per client IP
func RateLimit(limit int, window time.Duration) gin.HandlerFunc {
	limiter := NewRateLimiter(limit, window)

	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			response.TooManyRequests(c, "Rate limit exceeded. Please try again later.")
			return
		}
		c.Next()
	}
}
