// Package handlers provides the HTTP endpoints built on a session.Store.
//
//	mux.Handle("POST /api/auth/touch", handler.Adapt(handlers.Touch(store)))
//	mux.Handle("GET /api/auth/session", handler.Adapt(handlers.Session(store)))
//	mux.Handle("GET /api/auth/me", handler.Adapt(handlers.Profile(store)))
//	mux.Handle("POST /api/auth/logout", handler.Adapt(handlers.Logout(store, "/")))
//
// Touch is the only caller of Store.Rollover. Session and Profile only read.
// Token values are never written to response bodies.
package handlers
