package session

import "errors"

var (
	// ErrUnavailable is returned when the request or response handle is missing.
	// It signals an integration bug, not a session state.
	ErrUnavailable = errors.New("session: unavailable dependency")
	// ErrNoIDToken is returned when a token set carries no id_token.
	ErrNoIDToken = errors.New("session: token set has no id_token")
	// ErrMalformedIDToken is returned when the id_token cannot be decoded.
	ErrMalformedIDToken = errors.New("session: malformed id_token")
)
