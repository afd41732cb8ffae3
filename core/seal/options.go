package seal

import (
	"io"
	"time"
)

// Option configures a Codec.
type Option func(*Codec)

// WithParams replaces DefaultParams. Negative values are treated as zero.
func WithParams(p Params) Option {
	return func(c *Codec) {
		c.params = Params{
			TTL:           max(p.TTL, 0),
			TimestampSkew: max(p.TimestampSkew, 0),
		}
	}
}

// WithClock overrides the time source used for expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		if now != nil {
			c.now = now
		}
	}
}

// WithRandom overrides the entropy source for salts and nonces.
func WithRandom(r io.Reader) Option {
	return func(c *Codec) {
		if r != nil {
			c.rand = r
		}
	}
}
