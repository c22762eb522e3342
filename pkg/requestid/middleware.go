package requestid

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formstate/pkg/logger"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
	idPattern   = "^[a-zA-Z0-9_-]+$"
)

var validIDRegex = regexp.MustCompile(idPattern)

type config struct {
	header        string
	generate      func() string
	trustIncoming bool
}

// Option configures the middleware returned by New.
type Option func(*config)

// WithHeader sets the header the ID is read from and echoed in.
func WithHeader(name string) Option {
	return func(c *config) {
		if name != "" {
			c.header = name
		}
	}
}

// WithGenerator replaces the UUID generator.
func WithGenerator(fn func() string) Option {
	return func(c *config) {
		if fn != nil {
			c.generate = fn
		}
	}
}

// WithTrustIncoming controls whether a well-formed client supplied ID is reused.
// Enabled by default.
func WithTrustIncoming(trust bool) Option {
	return func(c *config) { c.trustIncoming = trust }
}

// New returns middleware that attaches a request ID to the request context
// and the response headers.
func New(opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{
		header:        Header,
		generate:      uuid.NewString,
		trustIncoming: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(cfg.header)
			if !cfg.trustIncoming || !validID(id) {
				id = cfg.generate()
			}
			w.Header().Set(cfg.header, id)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}

// Middleware is New with default options.
func Middleware(next http.Handler) http.Handler {
	return New()(next)
}

// LoggerExtractor adds the request ID to records logged with a request context.
// Use it with logger.WithContextExtractors.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := FromContext(ctx); id != "" {
			return logger.RequestID(id), true
		}
		return slog.Attr{}, false
	}
}

// validID accepts 1 to 128 characters from [a-zA-Z0-9_-].
func validID(id string) bool {
	return len(id) <= maxIDLength && validIDRegex.MatchString(id)
}
