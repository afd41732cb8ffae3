// Package tokencache hands out the access token kept in the session and
// refreshes it with the OAuth 2.0 refresh grant when it has expired.
//
//	cache := tokencache.New(store,
//		tokencache.WithRefresher(&oauth2.Config{
//			ClientID:     cfg.ClientID,
//			ClientSecret: cfg.ClientSecret,
//			Endpoint:     oauth2.Endpoint{TokenURL: cfg.TokenURL},
//		}),
//	)
//
//	tok, err := cache.AccessToken(w, r, "read:messages")
//	switch {
//	case errors.Is(err, tokencache.ErrNotAuthenticated):
//		// redirect to login
//	case err != nil:
//		return err
//	}
//	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
//
// A refreshed session is written back with Store.Save. With the cookie store
// the access and refresh tokens are only persisted when StoreAccessToken and
// StoreRefreshToken are enabled; otherwise the refreshed token is returned but
// not remembered.
package tokencache
