package messages

import (
	"log/slog"
	"strings"
)

// DefaultLanguage is used when no language is configured or negotiated.
const DefaultLanguage = "en"

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used when a requested language is
// missing or no Accept-Language preference matches.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang = strings.TrimSpace(lang); lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithLogger provides a logger for catalog diagnostics.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMissingLogging controls whether lookups of missing keys are logged.
// Default is false.
func WithMissingLogging(enabled bool) Option {
	return func(c *Catalog) {
		c.logMissing = enabled
	}
}
