package handlers

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// RateLimiter is a fixed-window per-IP counter. It exists to keep bots
// from hammering the capture form; precision is not a goal.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*windowCount
	limit   int
	window  time.Duration
}

type windowCount struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*windowCount),
		limit:   limit,
		window:  window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	c, exists := rl.clients[ip]
	if !exists {
		rl.clients[ip] = &windowCount{count: 1, lastReset: now}
		return true
	}

	if now.Sub(c.lastReset) > rl.window {
		c.count = 1
		c.lastReset = now
		return true
	}

	c.count++
	return c.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, c := range rl.clients {
			if now.Sub(c.lastReset) > rl.window*2 {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// first hop is the client
		if i := strings.IndexByte(xff, ','); i >= 0 {
			return strings.TrimSpace(xff[:i])
		}
		return xff
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return r.RemoteAddr
}
