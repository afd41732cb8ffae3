package handlers

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/sealedsession/core/handler"
	"github.com/dmitrymomot/sealedsession/core/session"
)

// Logout clears the session and redirects with 303 to the returnTo query
// parameter when it is a local path, otherwise to fallback.
func Logout(clearer session.Clearer, fallback string) handler.Func {
	if !isLocalPath(fallback) {
		fallback = "/"
	}

	return func(w http.ResponseWriter, r *http.Request) error {
		if err := session.CheckHandles(w, r); err != nil {
			return err
		}

		if err := clearer.Clear(w, r); err != nil {
			return err
		}

		target := fallback
		if returnTo := r.URL.Query().Get("returnTo"); isLocalPath(returnTo) {
			target = returnTo
		}

		return handler.Redirect(w, r, target, http.StatusSeeOther)
	}
}

// isLocalPath reports whether p is an absolute path on this origin.
// Protocol-relative ("//host") and backslash forms are rejected.
func isLocalPath(p string) bool {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return false
	}
	return !strings.ContainsAny(p, "\r\n")
}
