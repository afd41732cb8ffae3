// Package sealedsession stores authenticated web sessions either entirely
// inside a sealed, tamper-evident cookie or in process memory.
//
// The module is organised as small packages:
//
//   - core/session: the Session entity and the Store contract
//   - core/seal: AES-GCM sealing with expiry and secret rotation
//   - core/cookie: cookie transport with size limits and secure defaults
//   - core/sessionstore: cookie and memory Store strategies
//   - core/tokencache: access token lookup with scope checks and refresh
//   - handlers: touch, session info, profile and logout endpoints
//   - middleware: request IDs, logging, security headers, authentication
//   - integration/metrics/prometheus: Prometheus recorder for store activity
//
// A runnable wiring of all of it lives in app/sessiondemo and cmd/sessiondemo.
//
// Basic usage:
//
//	store, err := sessionstore.NewCookieStore(cfg.Session)
//	if err != nil {
//		return err
//	}
//	mux.Handle("POST /api/auth/touch", handler.Adapt(handlers.Touch(store)))
package sealedsession
