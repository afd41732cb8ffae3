package server

import "errors"

var (
	// ErrMissingAddress is returned when server address is not provided.
	ErrMissingAddress = errors.New("server: address is required")
	// ErrServerAlreadyRunning is returned by Start on a running server.
	ErrServerAlreadyRunning = errors.New("server: already running")
	// ErrLoadTLS is returned when the configured certificate cannot be loaded.
	ErrLoadTLS = errors.New("server: failed to load TLS certificate")
)
