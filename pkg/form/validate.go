package form

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/formstate/pkg/async"
	"github.com/dmitrymomot/formstate/pkg/logger"
	"github.com/dmitrymomot/formstate/pkg/validator"
)

// ValidateField runs the validator registered for field against a snapshot
// of all current values and replaces the field's error list with the
// outcome. It returns true when the field has no errors afterwards.
//
// A field without a registered validator is left untouched and reported as
// valid. The field is marked pending for the duration of the call.
func (f *Form[V]) ValidateField(field string) bool {
	schema, ok := f.rule(field)
	if !ok {
		return true
	}

	values := f.begin(field)
	err := f.run(func() error {
		return schema.ValidateSync(field, values)
	})
	return f.finish(context.Background(), field, err)
}

// ValidateFieldAsync is the concurrent counterpart of ValidateField: the
// validator runs in its own goroutine and the returned future resolves to
// the field's validity. The field is pending and the values are captured
// before the call returns.
//
// The future carries an error only when ctx is done before or while the
// validator runs. In that case the error list is left as it was.
func (f *Form[V]) ValidateFieldAsync(ctx context.Context, field string) *async.Future[bool] {
	schema, ok := f.rule(field)
	if !ok {
		return async.Resolved(true)
	}
	if err := ctx.Err(); err != nil {
		return async.Rejected[bool](err)
	}

	values := f.begin(field)
	return async.Async(context.WithoutCancel(ctx), values, func(_ context.Context, values validator.Values[V]) (bool, error) {
		err := ctx.Err()
		if err == nil {
			err = f.run(func() error {
				return schema.Validate(ctx, field, values)
			})
		}
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			f.ContinueForField(field)
			return f.fieldValid(field), ctxErr
		}
		return f.finish(ctx, field, err), nil
	})
}

// Validate validates every field with a registered validator and reports
// whether the whole form is valid. Fields without validators keep their
// errors.
func (f *Form[V]) Validate() bool {
	for _, field := range f.registeredFields() {
		f.ValidateField(field)
	}
	return f.IsValid()
}

// ValidateAsync validates every registered field concurrently. The future
// settles only after every field validation has settled, whatever their
// individual outcome, and resolves to IsValid at that point.
func (f *Form[V]) ValidateAsync(ctx context.Context) *async.Future[bool] {
	fields := f.registeredFields()
	futures := make([]*async.Future[bool], 0, len(fields))
	for _, field := range fields {
		futures = append(futures, f.ValidateFieldAsync(ctx, field))
	}

	return async.Async(context.WithoutCancel(ctx), futures, func(_ context.Context, futures []*async.Future[bool]) (bool, error) {
		results := async.AllSettled(futures...)
		return f.IsValid(), async.FirstError(results)
	})
}

// begin marks field pending and returns a snapshot of all values.
func (f *Form[V]) begin(field string) validator.Values[V] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setFieldPending(field, true)

	snapshot := make(validator.Values[V], len(f.values))
	for k, v := range f.values {
		snapshot[k] = v
	}
	return snapshot
}

// run calls validate, converting a panic into an error.
func (f *Form[V]) run(validate func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrValidatorPanicked, r)
		}
	}()
	return validate()
}

// finish records the outcome of a validation, releases the pending flag
// and reports whether field is valid.
func (f *Form[V]) finish(ctx context.Context, field string, err error) bool {
	messages := []string{}
	var failure error

	if err != nil {
		if validator.IsValidationError(err) {
			messages = validator.ExtractValidationErrors(err).Messages(f.message)
		} else {
			failure = err
			if !errors.Is(err, ErrValidatorPanicked) {
				failure = errors.Join(ErrValidatorFailed, err)
			}
			messages = []string{err.Error()}
		}
	}

	f.mu.Lock()
	f.errors[field] = messages
	f.setFieldPending(field, false)
	f.mu.Unlock()

	if failure != nil {
		f.logger.ErrorContext(ctx, "field validation failed",
			logger.Component("form"),
			logger.Field(field),
			logger.Error(failure),
		)
		if f.onFailure != nil {
			f.onFailure(field, failure)
		}
	}

	return len(messages) == 0
}

func (f *Form[V]) fieldValid(field string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.errors[field]) == 0
}
