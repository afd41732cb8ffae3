// Package handler provides the small set of primitives HTTP endpoints in this
// module are built on.
//
// A Func is an http.HandlerFunc that returns an error instead of rendering it:
//
//	func whoami(w http.ResponseWriter, r *http.Request) error {
//		sess, err := store.Read(r)
//		if err != nil {
//			return err // 500
//		}
//		if sess == nil {
//			return handler.ErrUnauthorized
//		}
//		return handler.JSON(w, http.StatusOK, sess.User)
//	}
//
// Middleware wraps a Func, and Chain applies several, outermost first:
//
//	h := handler.Chain(whoami, middleware.RequestID(), middleware.Logging(log))
//	mux.Handle("GET /me", handler.Adapt(h, handler.WithLogger(log)))
//
// # Errors
//
// Adapt renders returned errors with JSONErrorHandler unless WithErrorHandler is
// given. HTTPError values keep their status, code and message. Errors that
// implement StatusCode() int get the matching predefined error. Anything else,
// including session.ErrUnavailable, becomes a 500 whose body never contains the
// internal error text; the error itself is logged.
package handler
