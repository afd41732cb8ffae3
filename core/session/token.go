package session

import (
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// protocolClaims are ID token claims that describe the token itself rather than the user.
var protocolClaims = []string{
	"iss", "aud", "exp", "iat", "nbf", "jti",
	"nonce", "at_hash", "c_hash", "azp", "auth_time",
}

// FromToken builds a session from a token set returned by the authorization-code exchange.
// User claims are taken from the id_token payload without verifying its signature;
// the exchange that produced tok is responsible for verification.
func FromToken(tok *oauth2.Token, createdAt time.Time) (Session, error) {
	if tok == nil {
		return Session{}, ErrNoIDToken
	}

	rawIDToken, _ := tok.Extra("id_token").(string)
	if rawIDToken == "" {
		return Session{}, ErrNoIDToken
	}

	user, err := userClaims(rawIDToken)
	if err != nil {
		return Session{}, err
	}

	return New(user, createdAt).WithToken(tok), nil
}

// WithToken returns a copy of s carrying the tokens from tok.
// User and CreatedAt are kept. The previous refresh token, scope and ID token
// survive when tok omits them, as refresh responses usually do.
func (s Session) WithToken(tok *oauth2.Token) Session {
	if tok == nil {
		return s
	}

	s.AccessToken = tok.AccessToken
	s.AccessTokenExpiresAt = tok.Expiry

	if scope, ok := tok.Extra("scope").(string); ok && scope != "" {
		s.AccessTokenScope = scope
	}
	if tok.RefreshToken != "" {
		s.RefreshToken = tok.RefreshToken
	}
	if idToken, ok := tok.Extra("id_token").(string); ok && idToken != "" {
		s.IDToken = idToken
	}

	return s
}

// Token returns the session's tokens as an oauth2 token set.
// The ID token and scope are exposed through Extra.
func (s Session) Token() *oauth2.Token {
	tok := &oauth2.Token{
		AccessToken:  s.AccessToken,
		TokenType:    "Bearer",
		RefreshToken: s.RefreshToken,
		Expiry:       s.AccessTokenExpiresAt,
	}

	extra := make(map[string]any, 2)
	if s.IDToken != "" {
		extra["id_token"] = s.IDToken
	}
	if s.AccessTokenScope != "" {
		extra["scope"] = s.AccessTokenScope
	}

	return tok.WithExtra(extra)
}

func userClaims(rawIDToken string) (map[string]any, error) {
	token, _, err := jwt.NewParser().ParseUnverified(rawIDToken, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedIDToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrMalformedIDToken
	}

	user := make(map[string]any, len(claims))
	for name, value := range claims {
		if slices.Contains(protocolClaims, name) {
			continue
		}
		user[name] = value
	}

	return user, nil
}
