package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/sealedsession/core/logger"
)

type adapter struct {
	fn           Func
	errorHandler ErrorHandler
	logger       *slog.Logger
}

// Option configures Adapt.
type Option func(*adapter)

// WithErrorHandler replaces JSONErrorHandler.
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *adapter) {
		if h != nil {
			a.errorHandler = h
		}
	}
}

// WithLogger sets the logger for server-side failures (5xx).
func WithLogger(log *slog.Logger) Option {
	return func(a *adapter) {
		if log != nil {
			a.logger = log
		}
	}
}

// Adapt converts fn into an http.Handler. A returned error is logged when it maps
// to a 5xx status and rendered by the error handler.
func Adapt(fn Func, opts ...Option) http.Handler {
	a := &adapter{
		fn:           fn,
		errorHandler: JSONErrorHandler,
		logger:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *adapter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := a.fn(w, r)
	if err == nil {
		return
	}

	if status := StatusCode(err); status >= http.StatusInternalServerError {
		a.logger.ErrorContext(r.Context(), "request failed",
			logger.Component("handler"),
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.StatusCode(status),
			logger.Error(err),
		)
	}

	a.errorHandler(w, r, err)
}
