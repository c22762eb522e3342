package formhttp

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/formstate/pkg/messages"
)

// DefaultDraftTTL is how long an idle form draft is kept.
const DefaultDraftTTL = 30 * time.Minute

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger for request and validator failures.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithCatalog renders validation messages in the language negotiated from
// the "lang" query parameter or the Accept-Language header.
func WithCatalog(catalog *messages.Catalog) Option {
	return func(h *Handler) {
		h.catalog = catalog
	}
}

// WithSanitizers sets per-field transforms applied to submitted string values
// before they reach the form.
func WithSanitizers(sanitizers map[string]func(string) string) Option {
	return func(h *Handler) {
		h.sanitizers = sanitizers
	}
}

// WithDraftTTL sets how long a draft lives after its last event.
func WithDraftTTL(ttl time.Duration) Option {
	return func(h *Handler) {
		if ttl > 0 {
			h.ttl = ttl
		}
	}
}
