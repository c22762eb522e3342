// Command formdemo serves a signup form whose state lives in form drafts,
// validated field by field as the browser reports focus changes.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formstate/pkg/config"
	"github.com/dmitrymomot/formstate/pkg/draft"
	"github.com/dmitrymomot/formstate/pkg/formhttp"
	"github.com/dmitrymomot/formstate/pkg/httpserver"
	"github.com/dmitrymomot/formstate/pkg/logger"
	"github.com/dmitrymomot/formstate/pkg/messages"
	"github.com/dmitrymomot/formstate/pkg/redis"
	"github.com/dmitrymomot/formstate/pkg/requestid"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	log := logger.New(opts...)
	logger.SetAsDefault(log)

	catalog, err := messages.NewDefault(messages.WithLogger(log), messages.WithMissingLogging(true))
	if err != nil {
		return fmt.Errorf("load messages: %w", err)
	}
	for lang, labels := range fieldLabels {
		catalog.Add(lang, labels)
	}

	store, checks, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	signup := formhttp.NewHandler(
		signupForm(directory{taken: []string{"admin@example.com"}, latency: 150 * time.Millisecond}),
		store,
		formhttp.WithLogger(log),
		formhttp.WithCatalog(catalog),
		formhttp.WithSanitizers(signupSanitizers()),
		formhttp.WithDraftTTL(cfg.DraftTTL),
	)

	r := chi.NewRouter()
	r.Use(requestid.Middleware, middleware.RealIP, middleware.Recoverer)
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, checks...))
	r.Mount("/signup", signup.Routes())

	return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, r)
}

// openStore picks Redis when REDIS_URL is set and process memory otherwise.
func openStore(ctx context.Context, cfg Config, log *slog.Logger) (draft.Store, []httpserver.Check, func(), error) {
	if !cfg.Redis.Enabled() {
		log.WarnContext(ctx, "REDIS_URL not set, drafts are kept in memory")
		store := draft.NewMemoryStore(time.Minute)
		return store, nil, func() { _ = store.Close() }, nil
	}

	client, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect redis: %w", err)
	}

	checks := []httpserver.Check{{Name: "redis", Func: redis.Healthcheck(client)}}
	store := draft.NewRedisStore(client, cfg.Redis.KeyPrefix+"draft:")
	return store, checks, func() { _ = client.Close() }, nil
}
