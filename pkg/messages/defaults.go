package messages

import (
	"context"
	"embed"
)

//go:embed locales
var defaultLocales embed.FS

// NewDefault creates a catalog preloaded with English and German templates
// for every built-in validation rule. Applications add field labels and
// their own keys on top with Add or LoadYAML.
func NewDefault(options ...Option) (*Catalog, error) {
	c := New(options...)
	if err := c.LoadFS(context.Background(), defaultLocales, "locales"); err != nil {
		return nil, err
	}
	return c, nil
}
