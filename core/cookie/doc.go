// Package cookie reads and writes raw HTTP cookies with shared default attributes
// and a size limit.
//
// The manager never transforms values. Encryption lives in package seal so that
// callers can rewrite an existing cookie value with fresh attributes without
// decrypting it first.
//
// # Basic Usage
//
//	manager := cookie.New(cookie.WithSecure(true))
//
//	// Write one Set-Cookie directive
//	err := manager.Set(w, r, "__session", value,
//		cookie.WithMaxAge(7200),
//		cookie.WithSameSite(http.SameSiteLaxMode),
//	)
//
//	// Read a raw value
//	value, err := manager.Get(r, "__session")
//	if errors.Is(err, cookie.ErrCookieNotFound) {
//		// no cookie
//	}
//
//	// All cookies at once
//	values := manager.Parse(r)
//
//	// Expire it
//	manager.Delete(w, r, "__session")
//
// # Security defaults
//
//   - HttpOnly and SameSite=Lax unless overridden
//   - Secure is forced for requests that arrived over TLS and for SameSite=None
//   - Set-Cookie directives larger than 4KB are rejected with ErrCookieTooLarge
//
// # Configuration
//
//	cfg := cookie.DefaultConfig()
//	cfg.Secure = true
//	cfg.SameSite = "strict"
//	manager, err := cookie.NewFromConfig(cfg)
package cookie
