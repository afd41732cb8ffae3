// Package sessionstore implements session.Store with two strategies.
//
// # Cookie store
//
// CookieStore keeps the entire session in one sealed cookie, so the service
// holds no session table and scales horizontally. The price is a hard size
// ceiling (about 4KB) and every persisted secret travelling, encrypted, to the
// browser. For that reason tokens are opt-in per field:
//
//	cfg := sessionstore.DefaultCookieConfig()
//	cfg.Secret = os.Getenv("SESSION_COOKIE_SECRET")
//	cfg.StoreAccessToken = true // ID token is stored by default, refresh token is not
//
//	store, err := sessionstore.NewCookieStore(cfg,
//		sessionstore.WithLogger(log),
//	)
//
// Save writes Persist(sess, flags): user claims and creation time always, each
// token only if its flag is on and the session has it. The returned session is
// that snapshot, not the input.
//
// Read never fails for state reasons: a missing, empty, expired, tampered or
// foreign cookie all read as "no session" (nil, nil). Telling a forged cookie
// apart from no cookie would give attackers an oracle.
//
// Rollover rewrites the raw cookie value with a fresh Max-Age and the configured
// path, domain and same-site policy. It does not unseal the payload. When there
// is no cookie it writes nothing.
//
// # Memory store
//
// MemoryStore holds one session in process memory. Save stores the session
// unfiltered, Rollover is a no-op. Use one instance per logical session context
// (tests, single-tenant tools).
//
// # Errors
//
// Every operation returns session.ErrUnavailable when the request or response
// handle is nil, before touching cookies or state.
package sessionstore
