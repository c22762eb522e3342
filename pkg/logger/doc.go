// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers so every package logs the same keys.
//
// New returns a JSON logger at info level writing to stdout. Options change
// the level, format, output and static attributes, and WithEnvironment
// applies a preset per deployment environment:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "formdemo"),
//		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "field validated",
//		logger.FormID(id),
//		logger.Field("email"),
//		logger.Duration(time.Since(start)),
//	)
//
// Context extractors run for every record logged through the *Context
// methods, so request scoped values such as the request ID show up without
// being passed around.
//
// Error and Errors return an empty attribute for nil errors, which slog
// drops, so they can be used without a nil check.
package logger
