// Package health provides HTTP handlers for service health monitoring.
//
// Handlers:
//   - Liveness: process is running (no dependency checks)
//   - Readiness: all registered checks pass
//
// Usage:
//
//	mux.Handle("GET /health/live", handler.Adapt(health.Liveness()))
//	mux.Handle("GET /health/ready", handler.Adapt(health.Readiness(log,
//		func(ctx context.Context) error {
//			_, err := registry.Gather()
//			return err
//		},
//	)))
//
// Checks follow the func(context.Context) error signature.
package health
