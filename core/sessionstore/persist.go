package sessionstore

import "github.com/dmitrymomot/sealedsession/core/session"

// PersistFlags selects which tokens may be persisted.
type PersistFlags struct {
	IDToken      bool
	AccessToken  bool
	RefreshToken bool
}

// Persist returns the snapshot of sess that a store is allowed to write.
// User and CreatedAt are always kept. A token is kept only when its flag is set
// and the session carries it; the access token scope and expiry travel with the
// access token.
func Persist(sess session.Session, flags PersistFlags) session.Session {
	out := session.New(sess.User, sess.CreatedAt).Clone()

	if flags.IDToken && sess.IDToken != "" {
		out.IDToken = sess.IDToken
	}

	if flags.AccessToken && sess.AccessToken != "" {
		out.AccessToken = sess.AccessToken
		out.AccessTokenScope = sess.AccessTokenScope
		out.AccessTokenExpiresAt = sess.AccessTokenExpiresAt
	}

	if flags.RefreshToken && sess.RefreshToken != "" {
		out.RefreshToken = sess.RefreshToken
	}

	return out
}
