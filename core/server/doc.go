// Package server runs an http.Handler with configured timeouts and graceful
// shutdown.
//
//	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, mux))
//	return g.Wait()
//
// Run serves until ctx is cancelled and then shuts down within the configured
// shutdown timeout. Start and Stop are available for manual control.
package server
