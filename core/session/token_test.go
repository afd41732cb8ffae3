package session_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/dmitrymomot/sealedsession/core/session"
)

func signIDToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("id-token-test-key"))
	require.NoError(t, err)
	return raw
}

func TestFromToken(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("builds session from token set", func(t *testing.T) {
		t.Parallel()

		idToken := signIDToken(t, jwt.MapClaims{
			"iss":   "https://issuer.example.com/",
			"aud":   "client-id",
			"exp":   now.Add(time.Hour).Unix(),
			"iat":   now.Unix(),
			"nonce": "n-0S6_WzA2Mj",
			"sub":   "auth0|123",
			"name":  "Jane Doe",
			"email": "jane@example.com",
		})

		tok := (&oauth2.Token{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			Expiry:       now.Add(time.Hour),
		}).WithExtra(map[string]any{
			"id_token": idToken,
			"scope":    "openid profile",
		})

		sess, err := session.FromToken(tok, now)
		require.NoError(t, err)

		assert.Equal(t, now, sess.CreatedAt)
		assert.Equal(t, "auth0|123", sess.Subject())
		assert.Equal(t, "Jane Doe", sess.User["name"])
		assert.Equal(t, "jane@example.com", sess.User["email"])
		assert.NotContains(t, sess.User, "iss")
		assert.NotContains(t, sess.User, "aud")
		assert.NotContains(t, sess.User, "exp")
		assert.NotContains(t, sess.User, "nonce")

		assert.Equal(t, idToken, sess.IDToken)
		assert.Equal(t, "access-1", sess.AccessToken)
		assert.Equal(t, "refresh-1", sess.RefreshToken)
		assert.Equal(t, "openid profile", sess.AccessTokenScope)
		assert.True(t, now.Add(time.Hour).Equal(sess.AccessTokenExpiresAt))
	})

	t.Run("nil token", func(t *testing.T) {
		t.Parallel()

		_, err := session.FromToken(nil, now)
		assert.ErrorIs(t, err, session.ErrNoIDToken)
	})

	t.Run("missing id token", func(t *testing.T) {
		t.Parallel()

		_, err := session.FromToken(&oauth2.Token{AccessToken: "access-1"}, now)
		assert.ErrorIs(t, err, session.ErrNoIDToken)
	})

	t.Run("malformed id token", func(t *testing.T) {
		t.Parallel()

		tok := (&oauth2.Token{AccessToken: "access-1"}).WithExtra(map[string]any{"id_token": "not-a-jwt"})

		_, err := session.FromToken(tok, now)
		assert.ErrorIs(t, err, session.ErrMalformedIDToken)
	})
}

func TestSession_WithToken(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	sess := session.New(map[string]any{"sub": "user-1"}, createdAt)
	sess.IDToken = "id-1"
	sess.AccessToken = "access-1"
	sess.AccessTokenScope = "openid profile"
	sess.RefreshToken = "refresh-1"

	t.Run("keeps values the new token set omits", func(t *testing.T) {
		t.Parallel()

		expiry := createdAt.Add(2 * time.Hour)
		updated := sess.WithToken(&oauth2.Token{AccessToken: "access-2", Expiry: expiry})

		assert.Equal(t, "access-2", updated.AccessToken)
		assert.Equal(t, expiry, updated.AccessTokenExpiresAt)
		assert.Equal(t, "refresh-1", updated.RefreshToken)
		assert.Equal(t, "id-1", updated.IDToken)
		assert.Equal(t, "openid profile", updated.AccessTokenScope)
		assert.Equal(t, createdAt, updated.CreatedAt)
		assert.Equal(t, "user-1", updated.Subject())

		assert.Equal(t, "access-1", sess.AccessToken, "original must not change")
	})

	t.Run("replaces values the new token set provides", func(t *testing.T) {
		t.Parallel()

		tok := (&oauth2.Token{AccessToken: "access-3", RefreshToken: "refresh-3"}).
			WithExtra(map[string]any{"scope": "openid", "id_token": "id-3"})
		updated := sess.WithToken(tok)

		assert.Equal(t, "refresh-3", updated.RefreshToken)
		assert.Equal(t, "id-3", updated.IDToken)
		assert.Equal(t, "openid", updated.AccessTokenScope)
	})

	t.Run("nil token is a no-op", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, sess, sess.WithToken(nil))
	})
}

func TestSession_Token(t *testing.T) {
	t.Parallel()

	expiry := time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC)
	sess := session.New(nil, time.Now())
	sess.IDToken = "id-1"
	sess.AccessToken = "access-1"
	sess.AccessTokenScope = "openid"
	sess.AccessTokenExpiresAt = expiry
	sess.RefreshToken = "refresh-1"

	tok := sess.Token()

	assert.Equal(t, "access-1", tok.AccessToken)
	assert.Equal(t, "Bearer", tok.TokenType)
	assert.Equal(t, "refresh-1", tok.RefreshToken)
	assert.Equal(t, expiry, tok.Expiry)
	assert.Equal(t, "id-1", tok.Extra("id_token"))
	assert.Equal(t, "openid", tok.Extra("scope"))
}
