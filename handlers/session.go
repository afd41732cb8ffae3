package handlers

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/sealedsession/core/handler"
	"github.com/dmitrymomot/sealedsession/core/session"
)

// Info describes a session without exposing any token value.
type Info struct {
	Subject              string     `json:"sub,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
	Scopes               []string   `json:"scopes,omitempty"`
	AccessTokenExpiresAt *time.Time `json:"accessTokenExpiresAt,omitempty"`
	HasIDToken           bool       `json:"hasIdToken"`
	HasAccessToken       bool       `json:"hasAccessToken"`
	HasRefreshToken      bool       `json:"hasRefreshToken"`
}

// NewInfo builds the public description of sess.
func NewInfo(sess session.Session) Info {
	info := Info{
		Subject:         sess.Subject(),
		CreatedAt:       sess.CreatedAt,
		HasIDToken:      sess.IDToken != "",
		HasAccessToken:  sess.HasAccessToken(),
		HasRefreshToken: sess.RefreshToken != "",
	}
	if info.HasAccessToken {
		info.Scopes = sess.Scopes()
		if !sess.AccessTokenExpiresAt.IsZero() {
			exp := sess.AccessTokenExpiresAt
			info.AccessTokenExpiresAt = &exp
		}
	}
	return info
}

// Session replies with the session Info, or 401 when there is no session.
func Session(store session.Store) handler.Func {
	return func(w http.ResponseWriter, r *http.Request) error {
		sess, err := store.Read(r)
		if err != nil {
			return err
		}
		if sess == nil {
			return handler.ErrUnauthorized
		}

		return handler.JSON(w, http.StatusOK, NewInfo(*sess))
	}
}

// Profile replies with the user claims, or 401 when there is no session.
func Profile(store session.Store) handler.Func {
	return func(w http.ResponseWriter, r *http.Request) error {
		sess, err := store.Read(r)
		if err != nil {
			return err
		}
		if sess == nil {
			return handler.ErrUnauthorized
		}

		return handler.JSON(w, http.StatusOK, sess.User)
	}
}
