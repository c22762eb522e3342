// Package httpserver runs an http.Handler with graceful shutdown,
// configurable timeouts and slog life-cycle logging.
//
// Run binds the listener first, so an invalid address fails immediately with
// ErrStart, then serves until the context is cancelled, an interrupt or TERM
// signal arrives, or Shutdown is called. Start and stop hooks receive the
// bound address, which makes ":0" usable in tests.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(log,
//		httpserver.Check{Name: "redis", Func: redis.Healthcheck(client)},
//	))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run wraps listen and serve errors with ErrStart; Shutdown wraps failures
// with ErrShutdown.
package httpserver
