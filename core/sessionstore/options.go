package sessionstore

import "log/slog"

// Option configures a CookieStore.
type Option func(*CookieStore)

// WithSealer replaces the codec built from CookieConfig.Secret.
func WithSealer(sealer Sealer) Option {
	return func(s *CookieStore) {
		if sealer != nil {
			s.sealer = sealer
		}
	}
}

// WithLogger sets the logger used for diagnostics. Unreadable cookies are
// logged at debug level only.
func WithLogger(logger *slog.Logger) Option {
	return func(s *CookieStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(metrics MetricsRecorder) Option {
	return func(s *CookieStore) {
		if metrics != nil {
			s.metrics = metrics
		}
	}
}

// WithMaxCookieSize sets the maximum size of the Set-Cookie directive.
func WithMaxCookieSize(size int) Option {
	return func(s *CookieStore) {
		if size > 0 {
			s.maxSize = size
		}
	}
}
