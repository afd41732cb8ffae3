package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/sealedsession/core/handler"
	"github.com/dmitrymomot/sealedsession/core/logger"
)

// Check reports whether a dependency is usable.
type Check func(context.Context) error

// Liveness always answers 200 "ALIVE".
func Liveness() handler.Func {
	return func(w http.ResponseWriter, _ *http.Request) error {
		return handler.String(w, http.StatusOK, "ALIVE")
	}
}

// Readiness answers "READY" when every check passes and 503 on the first failure.
func Readiness(log *slog.Logger, checks ...Check) handler.Func {
	if log == nil {
		log = logger.Discard()
	}

	return func(w http.ResponseWriter, r *http.Request) error {
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed",
					logger.Component("health"),
					logger.Error(err),
				)
				return handler.ErrServiceUnavailable
			}
		}

		return handler.String(w, http.StatusOK, "READY")
	}
}
