package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/sealedsession/app/sessiondemo"
	"github.com/dmitrymomot/sealedsession/core/config"
	"github.com/dmitrymomot/sealedsession/core/logger"
)

func main() {
	var cfg sessiondemo.Config
	config.MustLoad(&cfg)

	if cfg.Log.Service == "" {
		cfg.Log.Service = cfg.AppName
	}
	log := logger.NewFromConfig(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := sessiondemo.NewApp(cfg, sessiondemo.WithLogger(log))
	if err != nil {
		log.Error("failed to build application", logger.Error(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Error("application stopped with error", logger.Error(err))
		os.Exit(1)
	}
}
