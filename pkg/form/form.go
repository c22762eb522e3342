package form

import (
	"io"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/dmitrymomot/formstate/pkg/logger"
	"github.com/dmitrymomot/formstate/pkg/validator"
)

// Form tracks the state of one form instance: current values, per-field
// error lists, touched and pending flags. The field set is fixed by the
// initial values and never changes.
//
// All methods are safe for concurrent use.
type Form[V any] struct {
	mu sync.RWMutex

	initialValues map[string]V
	values        map[string]V
	schema        map[string]validator.Schema[V]
	errors        map[string][]string
	touched       map[string]bool
	pending       map[string]bool
	formPending   bool

	onSubmit  SubmitFunc[V]
	logger    *slog.Logger
	message   MessageFunc
	onFailure FailureHook
}

// New creates a form from opts.
//
// Every initial field gets an empty error list and a touched flag. Pending
// flags are created per field only when a validation schema is supplied.
// Schema entries for fields missing from the initial values are dropped.
func New[V any](opts Options[V], options ...Option) *Form[V] {
	s := settings{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(&s)
	}

	f := &Form[V]{
		initialValues: maps.Clone(opts.InitialValues),
		values:        maps.Clone(opts.InitialValues),
		errors:        make(map[string][]string, len(opts.InitialValues)),
		touched:       make(map[string]bool, len(opts.InitialValues)),
		pending:       make(map[string]bool),
		onSubmit:      opts.OnSubmit,
		logger:        s.logger,
		message:       s.message,
		onFailure:     s.onFailure,
	}
	if f.initialValues == nil {
		f.initialValues = make(map[string]V)
		f.values = make(map[string]V)
	}

	for field := range f.initialValues {
		f.errors[field] = []string{}
		f.touched[field] = false
	}

	if opts.ValidationSchema != nil {
		f.schema = make(map[string]validator.Schema[V], len(opts.ValidationSchema))
		for field := range f.initialValues {
			f.pending[field] = false
		}
		for field, schema := range opts.ValidationSchema {
			if schema == nil {
				continue
			}
			if _, ok := f.initialValues[field]; !ok {
				f.logger.Warn("validation rule for unknown field ignored",
					logger.Component("form"),
					logger.Field(field),
				)
				continue
			}
			f.schema[field] = schema
		}
	}

	return f
}

// Fields returns the field names in lexical order.
func (f *Form[V]) Fields() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Sorted(maps.Keys(f.initialValues))
}

// Values returns a copy of the current values.
func (f *Form[V]) Values() map[string]V {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return maps.Clone(f.values)
}

// Value returns the current value of field.
func (f *Form[V]) Value(field string) (V, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[field]
	return v, ok
}

// SetValues replaces the current values wholesale. It does not merge with
// the previous values and does not trigger validation.
func (f *Form[V]) SetValues(values map[string]V) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = maps.Clone(values)
	if f.values == nil {
		f.values = make(map[string]V)
	}
}

// Reset restores the initial values and marks every field untouched.
// Errors and pending flags are left as they are.
func (f *Form[V]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = maps.Clone(f.initialValues)
	for field := range f.touched {
		f.touched[field] = false
	}
}

// Touch marks field as touched. Unknown fields are ignored.
func (f *Form[V]) Touch(field string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.touched[field]; ok {
		f.touched[field] = true
	}
}

func (f *Form[V]) IsTouched(field string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.touched[field]
}

// Touched returns a copy of the touched flags.
func (f *Form[V]) Touched() map[string]bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return maps.Clone(f.touched)
}

// HasRule reports whether a validator is registered for field.
func (f *Form[V]) HasRule(field string) bool {
	_, ok := f.rule(field)
	return ok
}

func (f *Form[V]) rule(field string) (validator.Schema[V], bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	s, ok := f.schema[field]
	return s, ok
}

func (f *Form[V]) registeredFields() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Sorted(maps.Keys(f.schema))
}
