// Package logger provides slog construction and attribute helpers.
//
// Create a logger:
//
//	log := logger.New(
//		logger.WithService("sessiondemo"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
// or from environment configuration (LOG_LEVEL, LOG_FORMAT, LOG_SERVICE):
//
//	log := logger.NewFromConfig(cfg.Log)
//
// Attribute helpers keep keys consistent across packages and are nil safe:
//
//	log.ErrorContext(ctx, "touch failed",
//		logger.Component("handlers"),
//		logger.RequestID(id),
//		logger.Error(err),
//	)
//
// Libraries in this module default to Discard() and accept a logger through
// a WithLogger option.
package logger
