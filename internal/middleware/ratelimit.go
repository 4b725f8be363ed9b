package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/pkg/redis"
)

// RateLimiter throttles the login endpoint per source address. With no
// redis configured it becomes a no-op so the console still works in
// minimal deployments.
type RateLimiter struct {
	redis  *redis.Client
	limit  int
	window time.Duration
}

func NewRateLimiter(redisClient *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		redis:  redisClient,
		limit:  limit,
		window: window,
	}
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.redis == nil {
			next.ServeHTTP(w, r)
			return
		}

		ip := r.RemoteAddr
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			ip = forwarded
		}

		key := "ratelimit:" + ip

		allowed, retryAfter, err := rl.redis.CheckRateLimit(r.Context(), key, rl.limit, rl.window)
		if err != nil {
			// a broken limiter must not lock operators out
			next.ServeHTTP(w, r)
			return
		}

		if !allowed {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"success":false,"error":"Rate limit exceeded. Please try again later."}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}
