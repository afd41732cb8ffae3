package sessiondemo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/sealedsession/core/handler"
	"github.com/dmitrymomot/sealedsession/core/health"
	"github.com/dmitrymomot/sealedsession/core/session"
	"github.com/dmitrymomot/sealedsession/core/tokencache"
	"github.com/dmitrymomot/sealedsession/handlers"
	"github.com/dmitrymomot/sealedsession/middleware"
)

const maxLoginBody = 4 << 10

// Handler returns the application routes.
func (a *App) Handler() http.Handler {
	security := middleware.SessionEndpointSecurity
	security.IsDevelopment = a.config.IsDevelopment()

	common := []handler.Middleware{
		middleware.RequestID(),
		middleware.Logging(a.logger),
		middleware.SecurityHeadersWithConfig(security),
	}

	api := func(h handler.Func, extra ...handler.Middleware) http.Handler {
		mws := append(append([]handler.Middleware{}, common...), extra...)
		return handler.Adapt(handler.Chain(h, mws...), handler.WithLogger(a.logger))
	}

	mux := http.NewServeMux()
	mux.Handle("POST /api/auth/touch", api(handlers.Touch(a.store)))
	mux.Handle("GET /api/auth/session", api(handlers.Session(a.store)))
	mux.Handle("GET /api/auth/me", api(handlers.Profile(a.store)))
	mux.Handle("POST /api/auth/logout", api(handlers.Logout(a.store, a.config.LogoutRedirect)))
	mux.Handle("GET /api/token", api(a.tokenInfo, middleware.RequireAuthentication(a.store)))
	mux.Handle("GET /metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
	mux.Handle("GET /health/live", handler.Adapt(health.Liveness()))
	mux.Handle("GET /health/ready", handler.Adapt(health.Readiness(a.logger, a.metricsReady), handler.WithLogger(a.logger)))

	if a.config.DemoLogin {
		mux.Handle("POST /api/auth/demo-login", api(a.demoLogin))
	}

	return mux
}

func (a *App) metricsReady(context.Context) error {
	_, err := a.registry.Gather()
	return err
}

type tokenInfoResponse struct {
	Scopes    []string   `json:"scopes"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// tokenInfo reports the usable access token's scopes and expiry, refreshing
// it when needed. Required scopes come from repeated ?scope= parameters.
func (a *App) tokenInfo(w http.ResponseWriter, r *http.Request) error {
	tok, err := a.tokens.AccessToken(w, r, r.URL.Query()["scope"]...)
	switch {
	case errors.Is(err, tokencache.ErrNotAuthenticated):
		return handler.ErrUnauthorized
	case errors.Is(err, tokencache.ErrNoAccessToken):
		return handler.NewHTTPError(http.StatusUnauthorized, "no_access_token")
	case errors.Is(err, tokencache.ErrAccessTokenExpired):
		return handler.NewHTTPError(http.StatusUnauthorized, "access_token_expired")
	case errors.Is(err, tokencache.ErrInsufficientScope):
		return handler.NewHTTPError(http.StatusForbidden, "insufficient_scope")
	case errors.Is(err, tokencache.ErrRefreshFailed):
		return handler.NewHTTPError(http.StatusBadGateway, "refresh_failed")
	case err != nil:
		return err
	}

	resp := tokenInfoResponse{Scopes: tok.Scopes}
	if !tok.ExpiresAt.IsZero() {
		resp.ExpiresAt = &tok.ExpiresAt
	}
	return handler.JSON(w, http.StatusOK, resp)
}

// demoLogin saves a session built from the posted claims.
func (a *App) demoLogin(w http.ResponseWriter, r *http.Request) error {
	var claims map[string]any
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLoginBody)).Decode(&claims); err != nil {
		return handler.ErrBadRequest.WithMessage("body must be a JSON object of user claims")
	}
	if sub, _ := claims["sub"].(string); sub == "" {
		return handler.ErrBadRequest.WithMessage(`claim "sub" is required`)
	}

	saved, err := a.store.Save(w, r, session.New(claims, time.Now()))
	if err != nil {
		return err
	}

	return handler.JSON(w, http.StatusOK, handlers.NewInfo(*saved))
}
