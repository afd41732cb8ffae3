package sessionstore

import "errors"

var (
	// ErrMissingCookieName is returned when the cookie store has no cookie name.
	ErrMissingCookieName = errors.New("sessionstore: cookie name is required")
	// ErrInvalidLifetime is returned for a negative cookie lifetime.
	ErrInvalidLifetime = errors.New("sessionstore: cookie lifetime must not be negative")
	// ErrSealSession is returned when the session cannot be sealed.
	ErrSealSession = errors.New("sessionstore: failed to seal session")
	// ErrWriteCookie is returned when the session cookie cannot be written.
	ErrWriteCookie = errors.New("sessionstore: failed to write session cookie")
)
