package http

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	clientIdleThreshold = 1 * time.Hour
	cleanupInterval     = 30 * time.Minute
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter allows each client capacity requests per window, refilled
// continuously.
type RateLimiter struct {
	mu          sync.Mutex
	limit       rate.Limit
	burst       int
	clients     map[string]*client
	stopCleanup chan struct{}
}

func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		limit:       rate.Limit(float64(capacity) / window.Seconds()),
		burst:       capacity,
		clients:     make(map[string]*client),
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for ip, c := range r.clients {
		if now.Sub(c.lastSeen) > clientIdleThreshold {
			delete(r.clients, ip)
		}
	}
}

func (r *RateLimiter) Stop() {
	close(r.stopCleanup)
}

func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	c, exists := r.clients[ip]
	if !exists {
		c = &client{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.clients[ip] = c
	}
	c.lastSeen = time.Now()
	r.mu.Unlock()

	return c.limiter.Allow()
}
