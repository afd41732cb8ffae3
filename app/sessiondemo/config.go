package sessiondemo

import (
	"github.com/dmitrymomot/sealedsession/core/logger"
	"github.com/dmitrymomot/sealedsession/core/server"
	"github.com/dmitrymomot/sealedsession/core/sessionstore"
)

// Store strategies selectable with SESSION_STORE.
const (
	StoreCookie = "cookie"
	StoreMemory = "memory"
)

// Config is the application configuration loaded from the environment.
type Config struct {
	Session sessionstore.CookieConfig
	Server  server.Config
	Log     logger.Config
	OAuth   OAuthConfig

	AppName string `env:"APP_NAME" envDefault:"sessiondemo"`
	Env     string `env:"APP_ENV" envDefault:"development"`

	// Store selects the session strategy. The memory store holds one session for
	// the whole process and is only meant for local single-user runs.
	Store string `env:"SESSION_STORE" envDefault:"cookie"`

	LogoutRedirect string `env:"LOGOUT_REDIRECT" envDefault:"/"`

	// DemoLogin exposes POST /api/auth/demo-login, which saves a session from the
	// posted claims without any authentication. Never enable it in production.
	DemoLogin bool `env:"DEMO_LOGIN_ENABLED" envDefault:"false"`
}

// OAuthConfig enables access token refresh when TokenURL is set.
type OAuthConfig struct {
	ClientID     string `env:"OAUTH_CLIENT_ID" envDefault:""`
	ClientSecret string `env:"OAUTH_CLIENT_SECRET" envDefault:""`
	TokenURL     string `env:"OAUTH_TOKEN_URL" envDefault:""`
}

// IsDevelopment reports whether the app runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}
