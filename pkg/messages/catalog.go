package messages

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/cast"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/formstate/pkg/logger"
	"github.com/dmitrymomot/formstate/pkg/validator"
)

// FieldLabelPrefix is the key prefix for human readable field names.
// When "fields.email" exists, %{field} placeholders render its value
// instead of the raw field name.
const FieldLabelPrefix = "fields."

// Catalog holds message templates per language, keyed by dotted path
// (for example "validation.required").
type Catalog struct {
	mu          sync.RWMutex
	messages    map[string]map[string]string
	defaultLang string
	langs       []string
	matcher     language.Matcher
	logger      *slog.Logger
	logMissing  bool
}

// New creates an empty catalog. Load templates with LoadYAML, LoadJSON,
// LoadFS or Add.
func New(options ...Option) *Catalog {
	c := &Catalog{
		messages:    make(map[string]map[string]string),
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(c)
	}
	c.rebuild()
	return c
}

// Add registers templates for lang. Existing keys are overwritten.
func (c *Catalog) Add(lang string, templates map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.add(lang, templates)
	c.rebuild()
}

func (c *Catalog) add(lang string, templates map[string]string) {
	lang = normalize(lang)
	if c.messages[lang] == nil {
		c.messages[lang] = make(map[string]string, len(templates))
	}
	maps.Copy(c.messages[lang], templates)
}

// rebuild refreshes the language list and matcher. Callers hold the lock
// or own the catalog exclusively.
func (c *Catalog) rebuild() {
	langs := slices.Sorted(maps.Keys(c.messages))
	def := normalize(c.defaultLang)
	if i := slices.Index(langs, def); i > 0 {
		langs = slices.Delete(langs, i, i+1)
		langs = slices.Insert(langs, 0, def)
	} else if i < 0 {
		langs = slices.Insert(langs, 0, def)
	}

	tags := make([]language.Tag, 0, len(langs))
	for _, lang := range langs {
		tags = append(tags, language.Make(lang))
	}
	c.langs = langs
	c.matcher = language.NewMatcher(tags)
}

// Languages returns the known languages, default first.
func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.langs)
}

// Has reports whether lang defines key.
func (c *Catalog) Has(lang, key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.messages[normalize(lang)][key]
	return ok
}

// Translate renders the template stored under key for lang, substituting
// %{name} placeholders with params. Missing languages fall back to the
// default language. The second result is false when no template exists.
func (c *Catalog) Translate(lang, key string, params map[string]any) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lang = normalize(lang)
	tmpl, ok := c.lookup(lang, key)
	if !ok {
		if c.logMissing {
			c.logger.Warn("message not found", logger.Language(lang), slog.String("key", key))
		}
		return key, false
	}
	return c.render(lang, tmpl, params), true
}

// Message returns a function rendering validation errors in lang. Errors
// whose translation key is unknown keep their original message.
func (c *Catalog) Message(lang string) func(validator.ValidationError) string {
	return func(ve validator.ValidationError) string {
		if ve.TranslationKey == "" {
			return ve.Message
		}
		params := ve.TranslationValues
		if params == nil {
			params = map[string]any{"field": ve.Field}
		}
		msg, ok := c.Translate(lang, ve.TranslationKey, params)
		if !ok {
			return ve.Message
		}
		return msg
	}
}

func (c *Catalog) lookup(lang, key string) (string, bool) {
	if tmpl, ok := c.messages[lang][key]; ok {
		return tmpl, true
	}
	if base, _, found := strings.Cut(lang, "-"); found {
		if tmpl, ok := c.messages[base][key]; ok {
			return tmpl, true
		}
	}
	tmpl, ok := c.messages[normalize(c.defaultLang)][key]
	return tmpl, ok
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

func (c *Catalog) render(lang, tmpl string, params map[string]any) string {
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		val, ok := params[name]
		if !ok {
			return match
		}
		s := stringify(val)
		if name == "field" || name == "other" {
			if label, ok := c.lookup(lang, FieldLabelPrefix+s); ok {
				return label
			}
		}
		return s
	})
}

func stringify(val any) string {
	if s, err := cast.ToStringE(val); err == nil {
		return s
	}
	if ss, err := cast.ToStringSliceE(val); err == nil {
		return strings.Join(ss, ", ")
	}
	return fmt.Sprint(val)
}

func normalize(lang string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(lang), "_", "-"))
}
