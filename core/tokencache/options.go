package tokencache

import (
	"log/slog"
	"time"

	"golang.org/x/oauth2"
)

// Option configures a Cache.
type Option func(*Cache)

// WithRefresher enables the refresh grant through cfg.
// Without it an expired access token yields ErrAccessTokenExpired.
func WithRefresher(cfg *oauth2.Config) Option {
	return func(c *Cache) {
		c.refresher = cfg
	}
}

// WithLeeway treats tokens expiring within d as expired. Default 60s.
func WithLeeway(d time.Duration) Option {
	return func(c *Cache) {
		if d >= 0 {
			c.leeway = d
		}
	}
}

// WithClock overrides the time source used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the logger for refresh failures.
func WithLogger(log *slog.Logger) Option {
	return func(c *Cache) {
		if log != nil {
			c.logger = log
		}
	}
}
