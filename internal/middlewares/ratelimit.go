package middlewares

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/mpetrenko/blog-api/internal/logger"
	"github.com/redis/go-redis/v9"
)

// RateCounter is the subset of redis commands the limiter needs.
// *redis.Client satisfies it.
type RateCounter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RateLimiter is a fixed-window per-IP request limiter backed by redis,
// applied to the auth routes to slow down credential stuffing.
type RateLimiter struct {
	rdb    RateCounter
	limit  int64
	window time.Duration
}

// NewRateLimiter creates a limiter allowing limit requests per window per client IP.
func NewRateLimiter(rdb RateCounter, limit int64, window time.Duration) *RateLimiter {
	return &RateLimiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
	}
}

type rateLimitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Limit wraps a handler with the rate limit check. A redis failure fails
// open: the limiter is protective, not authoritative.
func (l *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		key := "ratelimit:" + clientIP(r)

		count, err := l.rdb.Incr(ctx, key).Result()
		if err != nil {
			logger.Log.Errorw("rate limiter unavailable, failing open", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		if count == 1 {
			if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
				logger.Log.Errorw("failed to set rate limit window", "key", key, "error", err)
			}
		}

		if count > l.limit {
			logger.Log.Infow("rate limit exceeded", "key", key, "count", count)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(rateLimitResponse{
				Success: false,
				Message: "Too many requests",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
