package sessiondemo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/sealedsession/core/logger"
	"github.com/dmitrymomot/sealedsession/core/server"
	"github.com/dmitrymomot/sealedsession/core/session"
	"github.com/dmitrymomot/sealedsession/core/sessionstore"
	"github.com/dmitrymomot/sealedsession/core/tokencache"
	sessionmetrics "github.com/dmitrymomot/sealedsession/integration/metrics/prometheus"
)

// Store is what the app needs from a session store.
type Store interface {
	session.Store
	session.Clearer
}

// App wires the session store, handlers, metrics and HTTP server.
type App struct {
	config   Config
	store    Store
	tokens   *tokencache.Cache
	registry *prometheus.Registry
	server   *server.Server
	logger   *slog.Logger
}

// AppOption configures an App.
type AppOption func(*App) error

// NewApp builds the application from cfg.
func NewApp(cfg Config, opts ...AppOption) (*App, error) {
	app := &App{
		config: cfg,
		logger: logger.Discard(),
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.registry == nil {
		app.registry = prometheus.NewRegistry()
		app.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	if app.store == nil {
		store, err := app.newStore(sessionmetrics.NewRecorder(app.registry))
		if err != nil {
			return nil, err
		}
		app.store = store
	}

	if app.tokens == nil {
		tokenOpts := []tokencache.Option{tokencache.WithLogger(app.logger)}
		if cfg.OAuth.TokenURL != "" {
			tokenOpts = append(tokenOpts, tokencache.WithRefresher(&oauth2.Config{
				ClientID:     cfg.OAuth.ClientID,
				ClientSecret: cfg.OAuth.ClientSecret,
				Endpoint:     oauth2.Endpoint{TokenURL: cfg.OAuth.TokenURL},
			}))
		}
		app.tokens = tokencache.New(app.store, tokenOpts...)
	}

	if app.server == nil {
		srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.server = srv
	}

	return app, nil
}

func (a *App) newStore(metrics sessionstore.MetricsRecorder) (Store, error) {
	switch a.config.Store {
	case StoreCookie, "":
		store, err := sessionstore.NewCookieStore(a.config.Session,
			sessionstore.WithLogger(a.logger),
			sessionstore.WithMetrics(metrics),
		)
		if err != nil {
			return nil, err
		}
		return store, nil
	case StoreMemory:
		a.logger.Warn("using the memory session store: every client shares one session",
			logger.Component("sessiondemo"),
			logger.Strategy(StoreMemory),
		)
		return sessionstore.NewMemoryStore(sessionstore.WithMemoryMetrics(metrics)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, a.config.Store)
	}
}

// Run serves the application until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.logger.InfoContext(ctx, "starting application",
		logger.Component("sessiondemo"),
		logger.Strategy(a.config.Store),
		slog.String("env", a.config.Env),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(a.server.Run(ctx, a.Handler()))
	return g.Wait()
}

// WithLogger sets the application logger.
func WithLogger(log *slog.Logger) AppOption {
	return func(app *App) error {
		if log == nil {
			return fmt.Errorf("%w: logger", ErrNilDependency)
		}
		app.logger = log
		return nil
	}
}

// WithStore replaces the store built from configuration.
func WithStore(store Store) AppOption {
	return func(app *App) error {
		if store == nil {
			return fmt.Errorf("%w: store", ErrNilDependency)
		}
		app.store = store
		return nil
	}
}

// WithRegistry sets the Prometheus registry served on /metrics.
func WithRegistry(reg *prometheus.Registry) AppOption {
	return func(app *App) error {
		if reg == nil {
			return fmt.Errorf("%w: registry", ErrNilDependency)
		}
		app.registry = reg
		return nil
	}
}

// WithServer replaces the server built from configuration.
func WithServer(srv *server.Server) AppOption {
	return func(app *App) error {
		if srv == nil {
			return fmt.Errorf("%w: server", ErrNilDependency)
		}
		app.server = srv
		return nil
	}
}
