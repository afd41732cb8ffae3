package handler

import "net/http"

// Func handles a request and reports failure as an error instead of writing it.
// Adapt converts a Func into an http.Handler.
type Func func(w http.ResponseWriter, r *http.Request) error

// ErrorHandler renders an error returned by a Func.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Middleware wraps a Func to add cross-cutting behaviour.
type Middleware func(next Func) Func

// Chain wraps h with middlewares. The first middleware is the outermost.
func Chain(h Func, middlewares ...Middleware) Func {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
