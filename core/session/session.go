package session

import (
	"maps"
	"slices"
	"strings"
	"time"
)

// Session is the authenticated state of one principal: identity claims plus
// the tokens issued alongside them. Empty strings and zero times mean "absent".
type Session struct {
	// User holds identity claims from the authentication provider.
	User map[string]any `json:"user"`

	// CreatedAt is fixed by New and never changed by any store operation.
	CreatedAt time.Time `json:"createdAt"`

	IDToken              string    `json:"idToken,omitempty"`
	AccessToken          string    `json:"accessToken,omitempty"`
	AccessTokenScope     string    `json:"accessTokenScope,omitempty"` // space-delimited
	AccessTokenExpiresAt time.Time `json:"accessTokenExpiresAt,omitzero"`
	RefreshToken         string    `json:"refreshToken,omitempty"`
}

// New creates a session for the given claims with no tokens attached.
func New(user map[string]any, createdAt time.Time) Session {
	if user == nil {
		user = map[string]any{}
	}
	return Session{
		User:      user,
		CreatedAt: createdAt,
	}
}

// Clone returns a copy that shares no claim map with s.
func (s Session) Clone() Session {
	s.User = maps.Clone(s.User)
	return s
}

// Subject returns the "sub" claim, or an empty string when it is missing or not a string.
func (s Session) Subject() string {
	sub, _ := s.User["sub"].(string)
	return sub
}

// Scopes splits AccessTokenScope into individual scope values.
func (s Session) Scopes() []string {
	return strings.Fields(s.AccessTokenScope)
}

// HasScopes reports whether every scope in required was granted to the access token.
func (s Session) HasScopes(required ...string) bool {
	granted := s.Scopes()
	for _, scope := range required {
		if !slices.Contains(granted, scope) {
			return false
		}
	}
	return true
}

// HasAccessToken reports whether the session carries an access token.
func (s Session) HasAccessToken() bool {
	return s.AccessToken != ""
}

// AccessTokenExpired reports whether the access token is expired at now, treating
// tokens that expire within leeway as already expired.
// Tokens without a known expiry never expire.
func (s Session) AccessTokenExpired(now time.Time, leeway time.Duration) bool {
	if s.AccessTokenExpiresAt.IsZero() {
		return false
	}
	return !now.Add(leeway).Before(s.AccessTokenExpiresAt)
}
