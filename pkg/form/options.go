package form

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/formstate/pkg/async"
	"github.com/dmitrymomot/formstate/pkg/validator"
)

// SubmitFunc is invoked by Submit once the form validated successfully.
// It receives a copy of the current values together with the form's
// validation entry points so the callback can re-validate after its own
// side effects.
type SubmitFunc[V any] func(
	ctx context.Context,
	values map[string]V,
	validate func() bool,
	validateAsync func(ctx context.Context) *async.Future[bool],
) error

// Options describes the fields of a form.
type Options[V any] struct {
	// InitialValues fixes the field set for the life of the form.
	InitialValues map[string]V
	// ValidationSchema maps field names to their validators. Optional.
	ValidationSchema map[string]validator.Schema[V]
	// OnSubmit is called by Submit after successful validation. Optional.
	OnSubmit SubmitFunc[V]
}

// MessageFunc renders a rule violation into the message stored for a field.
type MessageFunc func(validator.ValidationError) string

// FailureHook observes validator failures that are not rule violations.
type FailureHook func(field string, err error)

type settings struct {
	logger    *slog.Logger
	message   MessageFunc
	onFailure FailureHook
}

// Option configures a Form.
type Option func(*settings)

// WithLogger sets the logger used to report validator failures.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMessageFunc sets how rule violations are turned into messages.
// By default the violation's Message is stored as is.
func WithMessageFunc(fn MessageFunc) Option {
	return func(s *settings) {
		if fn != nil {
			s.message = fn
		}
	}
}

// WithFailureHook registers a callback for unexpected validator failures:
// errors that are not validator.ValidationErrors and recovered panics.
func WithFailureHook(fn FailureHook) Option {
	return func(s *settings) {
		s.onFailure = fn
	}
}
