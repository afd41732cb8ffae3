package tokencache

import "errors"

var (
	// ErrNotAuthenticated is returned when the request has no session.
	ErrNotAuthenticated = errors.New("tokencache: not authenticated")
	// ErrNoAccessToken is returned when the session carries no access token.
	ErrNoAccessToken = errors.New("tokencache: session has no access token")
	// ErrInsufficientScope is returned when the access token lacks a required scope.
	ErrInsufficientScope = errors.New("tokencache: insufficient scope")
	// ErrAccessTokenExpired is returned when the access token expired and cannot be refreshed.
	ErrAccessTokenExpired = errors.New("tokencache: access token expired")
	// ErrRefreshFailed is returned when the refresh grant fails.
	ErrRefreshFailed = errors.New("tokencache: refresh failed")
)
