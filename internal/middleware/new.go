package middleware

import (
	"voice-calendar-assistant/pkg/log"
)

// Config controls the shared middlewares.
type Config struct {
	RateLimitPerMin int
	MaxClients      int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RateLimitPerMin, cfg.MaxClients),
	}
}
