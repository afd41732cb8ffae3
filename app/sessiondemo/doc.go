// Package sessiondemo assembles the session endpoints into a runnable service.
//
// Routes:
//
//	POST /api/auth/touch        extend the session cookie
//	GET  /api/auth/session      session metadata
//	GET  /api/auth/me           user claims
//	POST /api/auth/logout       clear the session and redirect
//	GET  /api/token             access token scopes and expiry (refreshes when needed)
//	GET  /metrics               Prometheus metrics
//	POST /api/auth/demo-login   only with DEMO_LOGIN_ENABLED=true
//
// Configuration is read from the environment; see Config.
package sessiondemo
