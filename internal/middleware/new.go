package middleware

import (
	"github.com/minakianandclaude/LifeTracker/pkg/log"
)

// Config carries the settings the middlewares need.
type Config struct {
	APIKey string

	RateLimitEnabled bool
	RequestsPerMin   int
	Burst            int
	MaxTrackedPeers  int

	AllowedOrigins []string
}

type Middleware struct {
	l              log.Logger
	apiKey         []byte
	limiter        *rateLimiter // nil when rate limiting is disabled
	allowedOrigins []string
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:              l,
		apiKey:         []byte(cfg.APIKey),
		allowedOrigins: cfg.AllowedOrigins,
	}
	if cfg.RateLimitEnabled {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin, cfg.Burst, cfg.MaxTrackedPeers)
	}
	return mw
}
