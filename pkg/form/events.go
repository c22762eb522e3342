package form

import (
	"context"
	"errors"

	"github.com/dmitrymomot/formstate/pkg/logger"
)

// Event is anything that names the field it originated from, such as a
// focus change reported by a browser.
type Event interface {
	TargetName() string
}

// FieldEvent is the plain Event implementation.
type FieldEvent struct {
	Name string `json:"name"`
}

func (e FieldEvent) TargetName() string {
	return e.Name
}

func targetName(e Event) string {
	if e == nil {
		return ""
	}
	return e.TargetName()
}

// HandleFocusIn clears the errors of the event's field and marks it touched.
// Events without a field name are ignored.
func (f *Form[V]) HandleFocusIn(e Event) {
	field := targetName(e)
	if field == "" {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.clearField(field)
	if _, ok := f.touched[field]; ok {
		f.touched[field] = true
	}
}

// HandleFocusOut validates the event's field and waits for the result.
// The outcome is available through Errors and IsValid.
func (f *Form[V]) HandleFocusOut(ctx context.Context, e Event) {
	field := targetName(e)
	if field == "" {
		return
	}
	if _, err := f.ValidateFieldAsync(ctx, field).AwaitContext(ctx); err != nil {
		f.logger.DebugContext(ctx, "focus out validation interrupted",
			logger.Component("form"),
			logger.Field(field),
			logger.Error(err),
		)
	}
}

// HandleSubmit starts validating the whole form and returns immediately.
// The form stays pending until every field validation has settled; poll
// IsFormPending or use Submit to wait for the result.
func (f *Form[V]) HandleSubmit(ctx context.Context) {
	f.Wait()
	future := f.ValidateAsync(ctx)

	go func() {
		defer f.Continue()
		if _, err := future.Await(); err != nil {
			f.logger.DebugContext(ctx, "submit validation interrupted",
				logger.Component("form"),
				logger.Error(err),
			)
		}
	}()
}

// Submit validates the whole form, waits for the outcome and, when the form
// is valid, invokes the OnSubmit callback with a copy of the values.
// The form is pending for the duration of the call.
//
// It returns the validity of the form and the callback's error, if any.
func (f *Form[V]) Submit(ctx context.Context) (bool, error) {
	f.Wait()
	defer f.Continue()

	valid, err := f.ValidateAsync(ctx).Await()
	if err != nil {
		return false, err
	}
	if !valid || f.onSubmit == nil {
		return valid, nil
	}

	if err := f.onSubmit(ctx, f.Values(), f.Validate, f.ValidateAsync); err != nil {
		return true, errors.Join(ErrSubmitFailed, err)
	}
	return true, nil
}
