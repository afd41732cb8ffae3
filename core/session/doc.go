// Package session defines the authenticated session entity and the Store contract
// shared by every request handler that needs identity context.
//
// A Session holds the user's identity claims and, optionally, the tokens issued
// with them. It is a plain value: the Store decides which fields survive a
// persist cycle.
//
// # Store contract
//
//   - Read(r) returns the current session, or nil when none can be recovered.
//     Missing, empty, expired and tampered cookies all look the same.
//   - Save(w, r, sess) persists sess and returns the value actually stored.
//   - Rollover(w, r) extends the session expiry without changing its content.
//
// Every operation returns ErrUnavailable when a request or response handle is nil.
// That is the only error reported for "no session" style conditions; everything
// else about session state is data, not an error.
//
// # Token sets
//
// Sessions are usually created from the token set returned by the OAuth2 code
// exchange:
//
//	tok, err := oauthConfig.Exchange(ctx, code)
//	if err != nil {
//		return err
//	}
//	sess, err := session.FromToken(tok, time.Now())
//	if err != nil {
//		return err
//	}
//	if _, err := store.Save(w, r, sess); err != nil {
//		return err
//	}
//
// Session.Token converts back to an *oauth2.Token, and WithToken applies a
// refreshed token set while keeping the claims and creation time.
package session
