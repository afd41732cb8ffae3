package handlers

import (
	"net/http"

	"github.com/dmitrymomot/sealedsession/core/handler"
	"github.com/dmitrymomot/sealedsession/core/session"
)

// Touch extends the current session's lifetime and replies 204.
// It never reads or saves the session, so a request without one still gets 204.
func Touch(store session.Store) handler.Func {
	return func(w http.ResponseWriter, r *http.Request) error {
		if err := session.CheckHandles(w, r); err != nil {
			return err
		}

		if err := store.Rollover(w, r); err != nil {
			return err
		}

		return handler.NoContent(w)
	}
}
