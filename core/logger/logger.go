package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config provides environment-based logger configuration.
type Config struct {
	Level   string `env:"LOG_LEVEL" envDefault:"info"`
	Format  string `env:"LOG_FORMAT" envDefault:"json"` // json or text
	Service string `env:"LOG_SERVICE" envDefault:""`
}

type options struct {
	level   slog.Level
	json    bool
	service string
	output  io.Writer
}

// Option configures New.
type Option func(*options)

// WithLevel sets the minimum level.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithTextFormatter switches output to slog's text handler.
func WithTextFormatter() Option {
	return func(o *options) {
		o.json = false
	}
}

// WithJSONFormatter switches output to slog's JSON handler (the default).
func WithJSONFormatter() Option {
	return func(o *options) {
		o.json = true
	}
}

// WithService adds a "service" attribute to every record.
func WithService(name string) Option {
	return func(o *options) {
		o.service = name
	}
}

// WithOutput sets the destination writer (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// New creates a slog logger. Defaults: info level, JSON to stdout.
func New(opts ...Option) *slog.Logger {
	o := options{
		level:  slog.LevelInfo,
		json:   true,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	handlerOpts := &slog.HandlerOptions{Level: o.level}

	var h slog.Handler
	if o.json {
		h = slog.NewJSONHandler(o.output, handlerOpts)
	} else {
		h = slog.NewTextHandler(o.output, handlerOpts)
	}

	log := slog.New(h)
	if o.service != "" {
		log = log.With(slog.String("service", o.service))
	}
	return log
}

// NewFromConfig creates a logger from configuration. Unknown levels fall back to info.
func NewFromConfig(cfg Config, opts ...Option) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	configOpts := []Option{WithLevel(level), WithService(cfg.Service)}
	if strings.EqualFold(cfg.Format, "text") {
		configOpts = append(configOpts, WithTextFormatter())
	}

	return New(append(configOpts, opts...)...)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
