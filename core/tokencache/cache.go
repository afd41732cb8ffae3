package tokencache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/sealedsession/core/logger"
	"github.com/dmitrymomot/sealedsession/core/session"
)

// DefaultLeeway is how long before its expiry an access token is considered expired.
const DefaultLeeway = 60 * time.Second

// Token is an access token handed to callers of downstream APIs.
type Token struct {
	AccessToken string
	Scopes      []string
	ExpiresAt   time.Time // zero when unknown
}

// Cache serves the access token held in the session and refreshes it when expired.
// It is safe for concurrent use.
type Cache struct {
	store     session.Store
	refresher *oauth2.Config
	leeway    time.Duration
	now       func() time.Time
	logger    *slog.Logger
	group     singleflight.Group
}

// New creates a Cache reading from and saving to store.
func New(store session.Store, opts ...Option) *Cache {
	c := &Cache{
		store:  store,
		leeway: DefaultLeeway,
		now:    time.Now,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AccessToken returns an access token granted every scope in scopes.
// An expired token is refreshed when the session holds a refresh token and a
// refresher is configured; the refreshed session is saved through the store.
func (c *Cache) AccessToken(w http.ResponseWriter, r *http.Request, scopes ...string) (Token, error) {
	if err := session.CheckHandles(w, r); err != nil {
		return Token{}, err
	}

	sess, err := c.store.Read(r)
	if err != nil {
		return Token{}, err
	}
	if sess == nil {
		return Token{}, ErrNotAuthenticated
	}
	if !sess.HasAccessToken() {
		return Token{}, ErrNoAccessToken
	}
	if !sess.HasScopes(scopes...) {
		return Token{}, fmt.Errorf("%w: need %v, granted %v", ErrInsufficientScope, scopes, sess.Scopes())
	}

	if !sess.AccessTokenExpired(c.now(), c.leeway) {
		return tokenOf(*sess), nil
	}

	if sess.RefreshToken == "" || c.refresher == nil {
		return Token{}, ErrAccessTokenExpired
	}

	refreshed, err := c.refresh(r.Context(), *sess)
	if err != nil {
		c.logger.WarnContext(r.Context(), "access token refresh failed",
			logger.Component("tokencache"),
			logger.Subject(sess.Subject()),
			logger.Error(err),
		)
		return Token{}, errors.Join(ErrRefreshFailed, err)
	}

	if _, err := c.store.Save(w, r, refreshed); err != nil {
		return Token{}, err
	}

	if !refreshed.HasScopes(scopes...) {
		return Token{}, fmt.Errorf("%w: need %v, granted %v", ErrInsufficientScope, scopes, refreshed.Scopes())
	}

	return tokenOf(refreshed), nil
}

// refresh runs the refresh grant. Concurrent refreshes of the same refresh token
// share one request, so providers that rotate refresh tokens see it used once.
func (c *Cache) refresh(ctx context.Context, sess session.Session) (session.Session, error) {
	v, err, _ := c.group.Do(sess.RefreshToken, func() (any, error) {
		// Only the refresh token is passed so the grant always runs.
		src := c.refresher.TokenSource(ctx, &oauth2.Token{RefreshToken: sess.RefreshToken})
		return src.Token()
	})
	if err != nil {
		return session.Session{}, err
	}

	tok, ok := v.(*oauth2.Token)
	if !ok || tok.AccessToken == "" {
		return session.Session{}, errors.New("token endpoint returned no access token")
	}

	return sess.Clone().WithToken(tok), nil
}

func tokenOf(sess session.Session) Token {
	return Token{
		AccessToken: sess.AccessToken,
		Scopes:      sess.Scopes(),
		ExpiresAt:   sess.AccessTokenExpiresAt,
	}
}
