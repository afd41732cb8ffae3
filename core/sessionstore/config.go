package sessionstore

import (
	"fmt"
	"strings"
)

// CookieConfig provides environment-based configuration for the cookie store.
// A store copies it at construction; later changes have no effect.
type CookieConfig struct {
	// Secret seals the cookie. Comma-separated values enable rotation:
	// the first seals, all are accepted when reading.
	Secret string `env:"SESSION_COOKIE_SECRET" envDefault:""`

	Name     string `env:"SESSION_COOKIE_NAME" envDefault:"__session"`
	Path     string `env:"SESSION_COOKIE_PATH" envDefault:"/"`
	Lifetime int    `env:"SESSION_COOKIE_LIFETIME" envDefault:"7200"` // seconds
	Domain   string `env:"SESSION_COOKIE_DOMAIN" envDefault:""`
	SameSite string `env:"SESSION_COOKIE_SAME_SITE" envDefault:"lax"`
	Secure   bool   `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
	HTTPOnly bool   `env:"SESSION_COOKIE_HTTP_ONLY" envDefault:"true"`

	// Which tokens may be written into the client-held cookie.
	StoreIDToken      bool `env:"SESSION_STORE_ID_TOKEN" envDefault:"true"`
	StoreAccessToken  bool `env:"SESSION_STORE_ACCESS_TOKEN" envDefault:"false"`
	StoreRefreshToken bool `env:"SESSION_STORE_REFRESH_TOKEN" envDefault:"false"`
}

// DefaultCookieConfig returns a CookieConfig with the same defaults as the env tags.
// Secret has no default and must be set.
func DefaultCookieConfig() CookieConfig {
	return CookieConfig{
		Name:         "__session",
		Path:         "/",
		Lifetime:     7200,
		SameSite:     "lax",
		HTTPOnly:     true,
		StoreIDToken: true,
	}
}

// secrets splits Secret into rotation keys, dropping blanks.
func (c CookieConfig) secrets() []string {
	if c.Secret == "" {
		return nil
	}

	parts := strings.Split(c.Secret, ",")
	secrets := make([]string, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			secrets = append(secrets, s)
		}
	}
	return secrets
}

// flags returns the persistence flags for Persist.
func (c CookieConfig) flags() PersistFlags {
	return PersistFlags{
		IDToken:      c.StoreIDToken,
		AccessToken:  c.StoreAccessToken,
		RefreshToken: c.StoreRefreshToken,
	}
}

func (c CookieConfig) validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrMissingCookieName
	}
	if c.Lifetime < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLifetime, c.Lifetime)
	}
	return nil
}
