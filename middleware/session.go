package middleware

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/sealedsession/core/handler"
	"github.com/dmitrymomot/sealedsession/core/session"
)

type sessionKey struct{}

// RequireAuthentication reads the session from store and rejects the request
// with handler.ErrUnauthorized when there is none. The session is stored in the
// request context for SessionFromContext.
//
// Store errors (e.g. session.ErrUnavailable) are returned as is and render as 500.
func RequireAuthentication(store session.Store) handler.Middleware {
	return func(next handler.Func) handler.Func {
		return func(w http.ResponseWriter, r *http.Request) error {
			sess, err := store.Read(r)
			if err != nil {
				return err
			}
			if sess == nil {
				return handler.ErrUnauthorized
			}

			return next(w, r.WithContext(WithSession(r.Context(), *sess)))
		}
	}
}

// WithSession returns a copy of ctx carrying sess.
func WithSession(ctx context.Context, sess session.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// SessionFromContext returns the session stored by RequireAuthentication.
func SessionFromContext(ctx context.Context) (session.Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(session.Session)
	return sess, ok
}
