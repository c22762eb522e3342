// Package requestid attaches a correlation ID to every HTTP request.
//
// The middleware reuses a well-formed X-Request-ID header sent by the client
// (1 to 128 characters of letters, digits, '-' and '_') and otherwise
// generates a UUID. The ID is stored in the request context and echoed in
// the response header.
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
// Records logged with the request context then carry request_id.
package requestid
