// Package middleware provides handler.Middleware for the session endpoints:
// request IDs, request logging, security headers and authentication.
//
//	protected := handler.Chain(profile,
//		middleware.RequestID(),
//		middleware.Logging(log),
//		middleware.SecurityHeaders(),
//		middleware.RequireAuthentication(store),
//	)
//	mux.Handle("GET /api/profile", handler.Adapt(protected))
//
// Middleware with options follow the Name / NameWithConfig pattern, and every
// config accepts a Skip func to bypass it for selected requests.
//
// # Authentication
//
// RequireAuthentication reads the session once and keeps it in the request
// context:
//
//	func profile(w http.ResponseWriter, r *http.Request) error {
//		sess, _ := middleware.SessionFromContext(r.Context())
//		return handler.JSON(w, http.StatusOK, sess.User)
//	}
//
// A missing session renders 401. Store failures are returned unchanged and
// render as 500.
package middleware
