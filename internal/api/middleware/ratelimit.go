package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ytscout/ytscout/internal/config"
	"github.com/ytscout/ytscout/internal/models"
	"github.com/ytscout/ytscout/internal/utils"
)

// rateLimiter is a sliding-window per-client limiter. It is the only
// shared mutable state in the service, guarded by its own mutex.
type rateLimiter struct {
	requests map[string][]time.Time
	mu       sync.Mutex
	limit    int
	window   time.Duration
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	rl := &rateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()

	return rl
}

func (rl *rateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for key, times := range rl.requests {
			validTimes := times[:0]
			for _, t := range times {
				if now.Sub(t) <= rl.window {
					validTimes = append(validTimes, t)
				}
			}
			if len(validTimes) == 0 {
				delete(rl.requests, key)
			} else {
				rl.requests[key] = validTimes
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *rateLimiter) isAllowed(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	times, exists := rl.requests[key]
	if !exists {
		rl.requests[key] = []time.Time{now}
		return true
	}

	validTimes := []time.Time{}
	for _, t := range times {
		if now.Sub(t) <= rl.window {
			validTimes = append(validTimes, t)
		}
	}

	if len(validTimes) >= rl.limit {
		rl.requests[key] = validTimes
		return false
	}

	validTimes = append(validTimes, now)
	rl.requests[key] = validTimes
	return true
}

// RateLimitMiddleware limits requests per client IP.
func RateLimitMiddleware(cfg *config.APIConfig) gin.HandlerFunc {
	limiter := newRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)

	return func(c *gin.Context) {
		if !limiter.isAllowed(c.ClientIP()) {
			appErr := utils.NewRateLimitError()
			c.AbortWithStatusJSON(appErr.StatusCode, models.VideoResponse{
				Success: false,
				Error:   appErr.Message,
			})
			return
		}

		c.Next()
	}
}
