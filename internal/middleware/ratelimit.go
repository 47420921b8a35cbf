package middleware

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"voice-calendar-assistant/pkg/response"
)

const (
	defaultRateLimitPerMin = 60
	defaultMaxClients      = 1000
	limiterTTL             = 5 * time.Minute
)

// RateLimit rejects callers that exceed the configured requests per minute.
// Callers are keyed by X-User-ID, falling back to the client IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := clientKey(c)
		if err := m.limiter.Allow(key); err != nil {
			m.l.Warnf(c.Request.Context(), "internal.middleware.RateLimit: %v", err)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

func clientKey(c *gin.Context) string {
	if userID := strings.TrimSpace(c.GetHeader(UserIDHeader)); userID != "" {
		return "user:" + userID
	}
	return "ip:" + extractIP(c)
}

// extractIP prefers proxy headers over the socket address.
func extractIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return ip
}

// rateLimiter keeps one token bucket per caller; idle buckets expire.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin, maxClients int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = defaultRateLimitPerMin
	}
	if maxClients <= 0 {
		maxClients = defaultMaxClients
	}

	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}

	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxClients, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
